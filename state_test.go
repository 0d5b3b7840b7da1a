package magidict_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magidict/magidict"
)

func TestExportImportState(t *testing.T) {
	d := magidict.New(map[string]any{"a": 1, "sub": map[string]any{"b": 2}})

	st := d.ExportState()
	assert.False(t, st.StandsForNull)
	assert.False(t, st.StandsForMissing)
	assert.Len(t, st.Data, 2)

	nd := magidict.ImportState(st)
	assert.True(t, d.Equal(nd))
	assert.False(t, nd.IsProtected())
	assert.IsType(t, &magidict.Dict{}, nd.MGet("sub"))
}

func TestExportImportSentinelState(t *testing.T) {
	base := magidict.New(map[string]any{"n": nil})

	for _, tc := range []struct {
		name     string
		sentinel *magidict.Dict
	}{
		{"missing", base.MGet("absent").(*magidict.Dict)},
		{"null", base.MGet("n").(*magidict.Dict)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.sentinel.ExportState()
			assert.Empty(t, st.Data)

			nd := magidict.ImportState(st)
			assert.True(t, nd.IsProtected())
			assert.Equal(t, tc.sentinel.Provenance(), nd.Provenance())
		})
	}
}

func TestGobRoundTrip(t *testing.T) {
	d := magidict.New(map[string]any{
		"a":   1,
		"sub": map[string]any{"b": "two"},
		"l":   []any{map[string]any{"c": 3}},
	})

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(d))

	var nd *magidict.Dict
	require.NoError(t, gob.NewDecoder(&buf).Decode(&nd))

	assert.True(t, d.Equal(nd))
	assert.IsType(t, &magidict.Dict{}, nd.MGet("sub"))
	assert.IsType(t, &magidict.Dict{}, nd.MGetPath("l", 0))
}

func TestGobRoundTripNilValue(t *testing.T) {
	d := magidict.New(map[string]any{"a": nil, "b": 1})

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(d))

	var nd *magidict.Dict
	require.NoError(t, gob.NewDecoder(&buf).Decode(&nd))

	assert.True(t, d.Equal(nd))
	v, err := nd.Get("a")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGobEncodeUnsupportedValue(t *testing.T) {
	// gob rejects interface values of unregistered concrete types.
	d := magidict.New(map[string]any{"v": struct{ X int }{1}})

	_, err := d.GobEncode()
	assert.True(t, magidict.IsCode(err, magidict.ErrCodec))
}

func TestGobRoundTripSentinel(t *testing.T) {
	s := magidict.New(nil).MGet("nope").(*magidict.Dict)

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(s))

	var nd *magidict.Dict
	require.NoError(t, gob.NewDecoder(&buf).Decode(&nd))

	assert.True(t, nd.StandsForMissing())
	assert.True(t, magidict.IsCode(nd.Set("k", 1), magidict.ErrProtected))
}
