package plot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/revplot/revplot/engine/plotdata"
)

func marshalPoints(t *testing.T, records []*plotdata.DataPoint) string {
	t.Helper()
	blob, err := json.Marshal(records)
	require.NoError(t, err)
	return string(blob)
}

func newPoint(t *testing.T, pairs ...any) *plotdata.DataPoint {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	dp := plotdata.NewDataPoint()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		require.True(t, ok)
		dp.Set(key, pairs[i+1])
	}
	return dp
}
