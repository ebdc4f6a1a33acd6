package plotdata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractOptions narrow a nested dataset down to a record list.
type ExtractOptions struct {
	// Query is a structural path (gjson syntax) locating the records inside
	// a nested document. Evaluated before any field filtering.
	Query string
	// Fields drives the heuristic record search when no query is given.
	Fields []string
}

// Extract reduces a nested Dataset to a flat record list in place. Datasets
// that are already list-of-record shaped pass through unchanged.
func Extract(ds *Dataset, opts ExtractOptions) error {
	if ds.Records != nil || ds.Tree == nil {
		return nil
	}
	root, ok := ds.Tree.(*Mapping)
	if !ok {
		return &StructureError{Path: ds.Path}
	}
	if opts.Query != "" {
		return extractQuery(ds, root, opts.Query)
	}
	if len(opts.Fields) > 0 {
		return extractByFields(ds, root, opts.Fields)
	}
	return &StructureError{Path: ds.Path}
}

// extractQuery evaluates the structural query against the mapping. A query
// addressing one list of mappings adopts that list; a query whose matches all
// resolve through a single literal leaf field synthesizes one record per
// match. Anything else is ambiguous.
func extractQuery(ds *Dataset, root *Mapping, query string) error {
	doc, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to evaluate query '%s' against '%s': %w", query, ds.Path, err)
	}
	result := gjson.GetBytes(doc, query)
	if !result.Exists() {
		return &StructureError{Path: ds.Path, Query: query}
	}

	if result.IsArray() {
		items := result.Array()
		if records, ok := arrayOfRecords(items); ok {
			ds.adopt(records, Keys(records[0]))
			return nil
		}
		field, ok := queryLeafField(query)
		if !ok || !allScalars(items) {
			return &StructureError{Path: ds.Path, Query: query}
		}
		records := make([]*DataPoint, 0, len(items))
		for _, item := range items {
			dp := NewDataPoint()
			dp.Set(field, nodeFromResult(item))
			records = append(records, dp)
		}
		ds.adopt(records, []string{field})
		return nil
	}

	field, ok := queryLeafField(query)
	if !ok || result.IsObject() {
		return &StructureError{Path: ds.Path, Query: query}
	}
	dp := NewDataPoint()
	dp.Set(field, nodeFromResult(result))
	ds.adopt([]*DataPoint{dp}, []string{field})
	return nil
}

// extractByFields searches the mapping depth-first, in key insertion order,
// for the first list whose entries are all mappings and whose first entry
// carries every requested field. This heuristic exists because tracked metric
// files have no standardized schema; ambiguity surfaces as an explicit error
// instead of silently picking a wrong list.
func extractByFields(ds *Dataset, root *Mapping, fields []string) error {
	records, ok := findRecords(root, fields)
	if !ok {
		return &StructureError{Path: ds.Path}
	}
	names := make([]string, 0, len(fields))
	for _, key := range Keys(records[0]) {
		if containsField(fields, key) {
			names = append(names, key)
		}
	}
	ds.adopt(records, names)
	return nil
}

// findRecords implements "first qualifying list found via depth-first key
// iteration order". Lists are candidates, not recursion points; only nested
// mappings are descended into.
func findRecords(m *Mapping, fields []string) ([]*DataPoint, bool) {
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		switch value := pair.Value.(type) {
		case *Mapping:
			if records, ok := findRecords(value, fields); ok {
				return records, true
			}
		case []Node:
			records, ok := recordsFromList(value)
			if !ok {
				continue
			}
			if hasFields(records[0], fields) {
				return records, true
			}
		}
	}
	return nil, false
}

func (ds *Dataset) adopt(records []*DataPoint, fieldNames []string) {
	ds.Records = records
	ds.FieldNames = fieldNames
	ds.Tree = nil
}

// queryLeafField extracts the final dot-segment of a query when it is a
// literal key (no wildcards or modifiers).
func queryLeafField(query string) (string, bool) {
	segment := query
	if i := strings.LastIndex(query, "."); i >= 0 {
		segment = query[i+1:]
	}
	if segment == "" || strings.ContainsAny(segment, "#*?@|[](){}") {
		return "", false
	}
	return segment, true
}

func arrayOfRecords(items []gjson.Result) ([]*DataPoint, bool) {
	if len(items) == 0 {
		return nil, false
	}
	records := make([]*DataPoint, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			return nil, false
		}
		m, ok := nodeFromResult(item).(*Mapping)
		if !ok {
			return nil, false
		}
		records = append(records, m)
	}
	return records, true
}

func allScalars(items []gjson.Result) bool {
	for _, item := range items {
		if item.IsObject() || item.IsArray() {
			return false
		}
	}
	return len(items) > 0
}

func hasFields(dp *DataPoint, fields []string) bool {
	for _, field := range fields {
		if _, ok := dp.Get(field); !ok {
			return false
		}
	}
	return true
}

func containsField(fields []string, name string) bool {
	for _, field := range fields {
		if field == name {
			return true
		}
	}
	return false
}
