package plotdata

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// parseYAML decodes with ordered maps so YAML documents get the same
// downstream handling as JSON.
func parseYAML(path string, content []byte) (*Dataset, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(content, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, &ParseError{Path: path, Format: FormatYAML, Err: err}
	}
	return datasetFromTree(path, nodeFromYAML(raw)), nil
}

func nodeFromYAML(raw any) Node {
	switch v := raw.(type) {
	case yaml.MapSlice:
		m := NewMapping()
		for _, item := range v {
			m.Set(fmt.Sprintf("%v", item.Key), nodeFromYAML(item.Value))
		}
		return m
	case []any:
		list := make([]Node, 0, len(v))
		for _, item := range v {
			list = append(list, nodeFromYAML(item))
		}
		return list
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return v
	}
}
