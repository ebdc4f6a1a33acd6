package plotdata

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalRecords(t *testing.T, records []*DataPoint) string {
	t.Helper()
	blob, err := json.Marshal(records)
	require.NoError(t, err)
	return string(blob)
}

func TestParseFile_CSV(t *testing.T) {
	t.Run("Should parse header rows into records", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", []byte("a,b\n1,10\n2,20\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.FieldNames)
		assert.Equal(t, `[{"a":"1","b":"10"},{"a":"2","b":"20"}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should treat single-column content as value rows without a header", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", []byte("1\n2\n3\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"value"}, ds.FieldNames)
		assert.Equal(t, `[{"value":"1"},{"value":"2"},{"value":"3"}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should split TSV on tabs", func(t *testing.T) {
		ds, err := ParseFile("metric.tsv", []byte("a\tb\n1\t10\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.FieldNames)
		assert.Equal(t, `[{"a":"1","b":"10"}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should trim spaces after separators", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", []byte("a, b\n1, 10\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.FieldNames)
		assert.Equal(t, `[{"a":"1","b":"10"}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should keep cell values as strings", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", []byte("x,y\n1,0.5\n"))
		require.NoError(t, err)
		assert.Equal(t, `[{"x":"1","y":"0.5"}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should pad ragged rows with nulls to keep the key set uniform", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", []byte("a,b\n1,10\n2\n"))
		require.NoError(t, err)
		assert.Equal(t, `[{"a":"1","b":"10"},{"a":"2","b":null}]`, marshalRecords(t, ds.Records))
		assert.Equal(t, Keys(ds.Records[0]), Keys(ds.Records[1]))
	})
	t.Run("Should return empty records for empty content", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", nil)
		require.NoError(t, err)
		assert.Empty(t, ds.Records)
		assert.Nil(t, ds.Tree)
	})
}

func TestParseFile_JSON(t *testing.T) {
	t.Run("Should parse a list of records with field order preserved", func(t *testing.T) {
		ds, err := ParseFile("metric.json", []byte(`[{"b":1,"a":2},{"b":3,"a":4}]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, ds.FieldNames)
		assert.Equal(t, `[{"b":1,"a":2},{"b":3,"a":4}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should keep nested documents as a tree", func(t *testing.T) {
		ds, err := ParseFile("metric.json", []byte(`{"train":[{"acc":0.9}]}`))
		require.NoError(t, err)
		assert.Nil(t, ds.Records)
		require.NotNil(t, ds.Tree)
		_, ok := ds.Tree.(*Mapping)
		assert.True(t, ok)
	})
	t.Run("Should fail on malformed content", func(t *testing.T) {
		_, err := ParseFile("metric.json", []byte(`{"a":`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "metric.json", parseErr.Path)
		assert.Equal(t, FormatJSON, parseErr.Format)
	})
	t.Run("Should round-trip a record list", func(t *testing.T) {
		ds, err := ParseFile("metric.json", []byte(`[{"x":1,"y":2},{"x":3,"y":4}]`))
		require.NoError(t, err)
		first := marshalRecords(t, ds.Records)
		again, err := ParseFile("metric.json", []byte(first))
		require.NoError(t, err)
		assert.Equal(t, first, marshalRecords(t, again.Records))
		assert.Equal(t, ds.FieldNames, again.FieldNames)
	})
}

func TestParseFile_YAML(t *testing.T) {
	t.Run("Should parse a list of records like JSON", func(t *testing.T) {
		content := "- x: 1\n  y: 2\n- x: 3\n  y: 4\n"
		ds, err := ParseFile("metric.yaml", []byte(content))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, ds.FieldNames)
		assert.Equal(t, `[{"x":1,"y":2},{"x":3,"y":4}]`, marshalRecords(t, ds.Records))
	})
	t.Run("Should keep nested mappings as a tree", func(t *testing.T) {
		content := "train:\n  - acc: 0.9\n  - acc: 0.95\n"
		ds, err := ParseFile("metric.yaml", []byte(content))
		require.NoError(t, err)
		assert.Nil(t, ds.Records)
		require.NotNil(t, ds.Tree)
	})
	t.Run("Should produce the same record list as the equivalent JSON", func(t *testing.T) {
		fromYAML, err := ParseFile("metric.yaml", []byte("- b: 1\n  a: 2\n"))
		require.NoError(t, err)
		fromJSON, err := ParseFile("metric.json", []byte(`[{"b":1,"a":2}]`))
		require.NoError(t, err)
		assert.Equal(t, marshalRecords(t, fromJSON.Records), marshalRecords(t, fromYAML.Records))
	})
	t.Run("Should fail on malformed content", func(t *testing.T) {
		_, err := ParseFile("metric.yaml", []byte("a: [1,"))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestParseFile_Dispatch(t *testing.T) {
	t.Run("Should fail on unsupported extensions", func(t *testing.T) {
		_, err := ParseFile("metric.txt", []byte("1,2"))
		var unsupported *UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "metric.txt", unsupported.Path)
	})
	t.Run("Should sniff the format case-insensitively", func(t *testing.T) {
		ds, err := ParseFile("METRIC.CSV", []byte("a,b\n1,2\n"))
		require.NoError(t, err)
		assert.Len(t, ds.Records, 1)
	})
	t.Run("Should round-trip CSV records through re-serialization", func(t *testing.T) {
		ds, err := ParseFile("metric.csv", []byte("a,b\n1,10\n2,20\n"))
		require.NoError(t, err)

		var sb strings.Builder
		sb.WriteString(strings.Join(ds.FieldNames, ",") + "\n")
		for _, dp := range ds.Records {
			row := make([]string, 0, len(ds.FieldNames))
			for _, name := range ds.FieldNames {
				value, _ := dp.Get(name)
				row = append(row, value.(string))
			}
			sb.WriteString(strings.Join(row, ",") + "\n")
		}

		again, err := ParseFile("metric.csv", []byte(sb.String()))
		require.NoError(t, err)
		assert.Equal(t, marshalRecords(t, ds.Records), marshalRecords(t, again.Records))
	})
}
