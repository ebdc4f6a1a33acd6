package plot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/tidwall/pretty"

	"github.com/revplot/revplot/engine/plotdata"
)

// Placeholders are quoted strings of the form "<REVPLOT_DATA:identifier>"
// embedded in the template document; each names the logical data source whose
// materialized records replace it at fill time.
var placeholderPattern = regexp.MustCompile(`"<REVPLOT_DATA:([^>"]+)>"`)

var prettyOptions = &pretty.Options{Width: 80, Indent: "    ", SortKeys: false}

// Template is a visualization document with data-source placeholders.
type Template struct {
	name    string
	content []byte
}

// NewTemplate wraps raw template content.
func NewTemplate(name string, content []byte) *Template {
	return &Template{name: name, content: content}
}

// Name returns the template's display name.
func (t *Template) Name() string {
	return t.name
}

// Sources returns the referenced data-source identifiers in encounter order,
// deduplicated.
func (t *Template) Sources() []string {
	matches := placeholderPattern.FindAllSubmatch(t.content, -1)
	seen := make(map[string]struct{}, len(matches))
	sources := make([]string, 0, len(matches))
	for _, match := range matches {
		id := string(match[1])
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		sources = append(sources, id)
	}
	return sources
}

// Fill substitutes the materialized records for every placeholder and
// reformats the document with stable key order and 4-space indentation, so
// repeated runs on unchanged input are byte-identical. When prioritySource is
// non-empty (the single-datafile override), every placeholder is filled from
// that source regardless of its own identifier.
func (t *Template) Fill(dataBySource map[string][]*plotdata.DataPoint, prioritySource string) ([]byte, error) {
	filled := append([]byte(nil), t.content...)
	for _, src := range t.Sources() {
		key := src
		if prioritySource != "" {
			key = prioritySource
		}
		records, ok := dataBySource[key]
		if !ok {
			return nil, &MissingDataSourceError{Source: key}
		}
		if records == nil {
			records = []*plotdata.DataPoint{}
		}
		blob, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("failed to encode data for '%s': %w", key, err)
		}
		marker := []byte(fmt.Sprintf(`"<REVPLOT_DATA:%s>"`, src))
		filled = bytes.ReplaceAll(filled, marker, blob)
	}
	return pretty.PrettyOptions(filled, prettyOptions), nil
}
