package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	j, err := NewJSON(map[string]any{"minAmount": 100})
	require.NoError(t, err)
	val, err := j.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"minAmount":100}`, val)

	var scanned JSON
	require.NoError(t, scanned.Scan([]byte(`{"minAmount":100}`)))
	var m map[string]any
	require.NoError(t, scanned.Decode(&m))
	assert.Equal(t, map[string]any{"minAmount": float64(100)}, m)

	var empty JSON
	require.NoError(t, empty.Scan(nil))
	val, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, val)
	m = nil
	require.NoError(t, empty.Decode(&m))
	assert.Nil(t, m)

	assert.Error(t, scanned.Scan(123))
}
