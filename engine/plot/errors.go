package plot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDataNorTemplate is returned when a plot is requested with neither a
// datafile nor a template to derive one from.
var ErrNoDataNorTemplate = errors.New("datafile or template is not specified")

// NoMetricOnRevisionError reports a metric file absent at one specific
// revision. The loader recovers from it locally as long as other revisions
// produce data.
type NoMetricOnRevisionError struct {
	Path     string
	Revision string
}

func (e *NoMetricOnRevisionError) Error() string {
	return fmt.Sprintf("could not find '%s' on revision '%s'", e.Path, e.Revision)
}

// NoMetricInHistoryError reports a metric file absent at every requested
// revision.
type NoMetricInHistoryError struct {
	Path      string
	Revisions []string
}

func (e *NoMetricInHistoryError) Error() string {
	return fmt.Sprintf("could not find '%s' on any of the revisions '%s'",
		e.Path, strings.Join(e.Revisions, ", "))
}

// TooManyDataSourcesError reports a single explicit datafile facing a
// template with more than one data source.
type TooManyDataSourcesError struct {
	Datafile string
	Sources  []string
}

func (e *TooManyDataSourcesError) Error() string {
	return fmt.Sprintf("unable to reason which of possible data sources: '%s' should be replaced with '%s'",
		strings.Join(e.Sources, ", "), e.Datafile)
}

// MissingDataSourceError reports a template placeholder with no materialized
// data at fill time.
type MissingDataSourceError struct {
	Source string
}

func (e *MissingDataSourceError) Error() string {
	return fmt.Sprintf("no data provided for template data source '%s'", e.Source)
}

// TemplateNotFoundError reports a template name that resolves to no stored
// template.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template '%s' not found", e.Name)
}
