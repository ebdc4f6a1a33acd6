package plotdata

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// -----------------------------------------------------------------------------
// Node
// -----------------------------------------------------------------------------

type (
	// Node is one value in a parsed document tree: a *Mapping, a []Node list,
	// or a scalar (string, float64, bool, nil).
	Node any

	// Mapping is an insertion-ordered string-keyed object node. Key order is
	// the document order of the source file and is preserved through JSON
	// marshaling.
	Mapping = orderedmap.OrderedMap[string, Node]

	// DataPoint is one labeled record of plottable values. It shares the
	// Mapping representation so extracted records keep their field order.
	DataPoint = Mapping
)

// RevisionKey is the field name under which every DataPoint is tagged with
// its originating revision before merging.
const RevisionKey = "rev"

// NewMapping creates an empty ordered mapping node.
func NewMapping() *Mapping {
	return orderedmap.New[string, Node]()
}

// NewDataPoint creates an empty record.
func NewDataPoint() *DataPoint {
	return orderedmap.New[string, Node]()
}

// Keys returns the field names of a record in insertion order.
func Keys(m *Mapping) []string {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// CloneDataPoint returns a shallow copy of a record preserving field order.
func CloneDataPoint(dp *DataPoint) *DataPoint {
	out := NewDataPoint()
	for pair := dp.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}

// recordsFromList reports whether every entry of a non-empty list is a
// mapping, converting it to a record slice when so.
func recordsFromList(list []Node) ([]*DataPoint, bool) {
	if len(list) == 0 {
		return nil, false
	}
	records := make([]*DataPoint, 0, len(list))
	for _, item := range list {
		m, ok := item.(*Mapping)
		if !ok {
			return nil, false
		}
		records = append(records, m)
	}
	return records, true
}
