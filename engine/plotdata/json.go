package plotdata

import (
	"errors"

	"github.com/tidwall/gjson"
)

// parseJSON walks the document with gjson, which iterates object members in
// document order, so the resulting tree keeps key insertion order.
func parseJSON(path string, content []byte) (*Dataset, error) {
	if !gjson.ValidBytes(content) {
		return nil, &ParseError{
			Path:   path,
			Format: FormatJSON,
			Err:    errors.New("invalid JSON document, did you forget to specify a query path?"),
		}
	}
	return datasetFromTree(path, nodeFromResult(gjson.ParseBytes(content))), nil
}

func nodeFromResult(r gjson.Result) Node {
	switch {
	case r.IsObject():
		m := NewMapping()
		r.ForEach(func(key, value gjson.Result) bool {
			m.Set(key.String(), nodeFromResult(value))
			return true
		})
		return m
	case r.IsArray():
		items := r.Array()
		list := make([]Node, 0, len(items))
		for _, item := range items {
			list = append(list, nodeFromResult(item))
		}
		return list
	case r.Type == gjson.String:
		return r.Str
	case r.Type == gjson.Number:
		return r.Num
	case r.Type == gjson.True:
		return true
	case r.Type == gjson.False:
		return false
	default:
		return nil
	}
}
