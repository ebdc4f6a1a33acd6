package plotdata

// ProjectFields returns copies of the records narrowed to the requested
// fields. Every record must carry every requested field; otherwise the error
// names both the requested set and the record's actual keys. The input
// records are never mutated.
func ProjectFields(records []*DataPoint, fieldNames, fields []string) ([]*DataPoint, []string, error) {
	if len(fields) == 0 {
		return records, fieldNames, nil
	}
	out := make([]*DataPoint, 0, len(records))
	for _, dp := range records {
		var missing []string
		for _, field := range fields {
			if _, ok := dp.Get(field); !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return nil, nil, &FieldNotFoundError{Requested: fields, Actual: Keys(dp)}
		}
		ndp := NewDataPoint()
		for pair := dp.Oldest(); pair != nil; pair = pair.Next() {
			if containsField(fields, pair.Key) {
				ndp.Set(pair.Key, pair.Value)
			}
		}
		out = append(out, ndp)
	}
	var names []string
	for _, name := range fieldNames {
		if containsField(fields, name) {
			names = append(names, name)
		}
	}
	return out, names, nil
}

// DefaultSeries synthesizes the schema-free fallback series: one {x, y} pair
// per record, x being the zero-based record index and y the value of the last
// known column (last of fieldNames when present, else the last key of the
// first record).
func DefaultSeries(records []*DataPoint, fieldNames []string) ([]*DataPoint, []string, error) {
	series := []string{"x", "y"}
	if len(records) == 0 {
		return []*DataPoint{}, series, nil
	}
	var yKey string
	if len(fieldNames) > 0 {
		yKey = fieldNames[len(fieldNames)-1]
	} else {
		keys := Keys(records[0])
		yKey = keys[len(keys)-1]
	}
	out := make([]*DataPoint, 0, len(records))
	for i, dp := range records {
		value, ok := dp.Get(yKey)
		if !ok {
			return nil, nil, &FieldNotFoundError{Requested: []string{yKey}, Actual: Keys(dp)}
		}
		ndp := NewDataPoint()
		ndp.Set("x", i)
		ndp.Set("y", value)
		out = append(out, ndp)
	}
	return out, series, nil
}
