package plotdata

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError reports a metric file whose extension maps to no
// supported format.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("'%s' - file type error: only json, yaml, csv and tsv types are supported", e.Path)
}

// ParseError reports content that could not be decoded as its declared format.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse '%s' as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError reports that the structural query or the heuristic record
// search produced an ambiguous or empty result.
type StructureError struct {
	Path  string
	Query string
}

func (e *StructureError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("plot data extraction failed for '%s': query '%s' matched neither a record list nor a single field", e.Path, e.Query)
	}
	return fmt.Sprintf("plot data extraction failed for '%s'", e.Path)
}

// FieldNotFoundError reports a field filter that is not a subset of the
// record keys.
type FieldNotFoundError struct {
	Path      string
	Requested []string
	Actual    []string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("could not find some of provided fields: '%s' in '%s'",
		strings.Join(e.Requested, ", "), strings.Join(e.Actual, ", "))
}
