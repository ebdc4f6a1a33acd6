package plotdata

import (
	"path/filepath"
	"strings"
)

// -----------------------------------------------------------------------------
// Format
// -----------------------------------------------------------------------------

// Format identifies a supported metric file format. The set is closed; new
// formats require a new constant and a branch in ParseFile.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatYAML Format = "yaml"
)

func (f Format) String() string {
	return string(f)
}

// FormatFor sniffs the format from the file extension, case-insensitively.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".yaml":
		return FormatYAML, nil
	}
	return "", &UnsupportedFormatError{Path: path}
}

// -----------------------------------------------------------------------------
// Dataset
// -----------------------------------------------------------------------------

// Dataset is the product of parsing one metric file at one revision: either a
// flat record list, or a nested tree that still needs structural extraction.
type Dataset struct {
	Path string
	// Records is set when the content is already list-of-record shaped.
	Records []*DataPoint
	// Tree is set instead of Records for nested JSON/YAML documents.
	Tree Node
	// FieldNames is the ordered schema when the source carries one (CSV
	// header, first record's keys). Nil means the schema is unknown.
	FieldNames []string
}

// ParseFile dispatches raw content to the parser declared by the file
// extension. Content is handed in by the caller; no filesystem access here.
func ParseFile(path string, content []byte) (*Dataset, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return parseJSON(path, content)
	case FormatCSV:
		return parseCSV(path, content, ',')
	case FormatTSV:
		return parseCSV(path, content, '\t')
	case FormatYAML:
		return parseYAML(path, content)
	}
	return nil, &UnsupportedFormatError{Path: path}
}

// datasetFromTree flattens a top-level record list eagerly; anything else is
// kept as a tree for the extractor.
func datasetFromTree(path string, root Node) *Dataset {
	if list, ok := root.([]Node); ok {
		if len(list) == 0 {
			return &Dataset{Path: path, Records: []*DataPoint{}}
		}
		if records, ok := recordsFromList(list); ok {
			return &Dataset{
				Path:       path,
				Records:    records,
				FieldNames: Keys(records[0]),
			}
		}
	}
	return &Dataset{Path: path, Tree: root}
}
