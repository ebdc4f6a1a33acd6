package plotdata

import (
	"bytes"
	"encoding/csv"
)

// parseCSV reads delimiter-separated content. A first row with exactly one
// column means there is no header: every row becomes a record with the single
// field "value". Otherwise row one defines the field names. Cell values stay
// strings; no numeric coercion happens at parse time.
func parseCSV(path string, content []byte, delimiter rune) (*Dataset, error) {
	format := FormatCSV
	if delimiter == '\t' {
		format = FormatTSV
	}
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	if len(rows) == 0 {
		return &Dataset{Path: path, Records: []*DataPoint{}}, nil
	}

	header := rows[0]
	body := rows[1:]
	if len(rows[0]) == 1 {
		header = []string{"value"}
		body = rows
	}

	records := make([]*DataPoint, 0, len(body))
	for _, row := range body {
		dp := NewDataPoint()
		for i, name := range header {
			// ragged rows keep the full header key set, missing cells are null
			if i < len(row) {
				dp.Set(name, row[i])
			} else {
				dp.Set(name, nil)
			}
		}
		records = append(records, dp)
	}
	return &Dataset{
		Path:       path,
		Records:    records,
		FieldNames: append([]string(nil), header...),
	}, nil
}
