package magidict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Plain maps can only sit unconverted inside a Dict when planted past
// the public constructors, so these tests reach into the storage layer.

func TestMGetPromotesPlainMapInPlace(t *testing.T) {
	d := &Dict{}
	d.rawSet("raw", map[string]any{"x": 1})

	got, ok := d.MGet("raw").(*Dict)
	require.True(t, ok)
	assert.Equal(t, 1, got.MGet("x"))

	// The stored entry was replaced, not just wrapped on the way out.
	stored, found := d.raw("raw")
	require.True(t, found)
	assert.Same(t, got, stored)
}

func TestAttrPromotesPlainMapInPlace(t *testing.T) {
	d := &Dict{}
	d.rawSet("raw", map[any]any{"x": 1})

	got, ok := d.Attr("raw").(*Dict)
	require.True(t, ok)
	assert.Equal(t, 1, got.MGet("x"))

	stored, _ := d.raw("raw")
	assert.Same(t, got, stored)
}

func TestMGetPathPromotesFinalStep(t *testing.T) {
	d := &Dict{}
	sub := &Dict{}
	sub.rawSet("raw", map[string]any{"x": 1})
	d.rawSet("sub", sub)

	got, ok := d.MGetPath("sub", "raw").(*Dict)
	require.True(t, ok)

	stored, _ := sub.raw("raw")
	assert.Same(t, got, stored)
}
