package magidict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magidict/magidict"
)

func TestHookConvertsNestedMaps(t *testing.T) {
	d := magidict.New(map[string]any{
		"user": map[string]any{"name": "Alice", "id": 1},
		"tags": []any{"read", map[string]any{"x": 1}},
	})

	user, err := d.Get("user")
	require.NoError(t, err)
	assert.IsType(t, &magidict.Dict{}, user)

	tags, err := d.Get("tags")
	require.NoError(t, err)
	assert.IsType(t, &magidict.Dict{}, tags.([]any)[1])
}

func TestHookIdempotent(t *testing.T) {
	x := map[string]any{"a": 1, "b": []any{map[string]any{"c": nil}}}
	h1 := magidict.Hook(x)
	h2 := magidict.Hook(h1)

	assert.Same(t, h1, h2)
	assert.True(t, h1.(*magidict.Dict).Equal(h2))
}

func TestHookScalarsPassThrough(t *testing.T) {
	assert.Equal(t, 42, magidict.Hook(42))
	assert.Equal(t, "s", magidict.Hook("s"))
	assert.Nil(t, magidict.Hook(nil))
	assert.Equal(t, []byte("b"), magidict.Hook([]byte("b")))
}

func TestHookCycle(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	d := magidict.New(m)

	v, err := d.Get("self")
	require.NoError(t, err)
	assert.Same(t, d, v)
}

func TestHookSharedReferencePreserved(t *testing.T) {
	shared := map[string]any{"x": 1}
	d := magidict.New(map[string]any{"a": shared, "b": shared})

	a, err := d.Get("a")
	require.NoError(t, err)
	b, err := d.Get("b")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestHookMutatesSliceInPlace(t *testing.T) {
	lst := []any{map[string]any{"x": 1}, 2}
	d := magidict.New(map[string]any{"l": lst})

	// The source slice itself was converted.
	assert.IsType(t, &magidict.Dict{}, lst[0])

	got, err := d.Get("l")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHookSelfReferentialSlice(t *testing.T) {
	lst := []any{nil, 1}
	lst[0] = lst

	h := magidict.Hook(lst).([]any)
	assert.Equal(t, 1, h[1]) // and the conversion terminated
}

func TestHookArrayRebuilt(t *testing.T) {
	arr := [2]any{map[string]any{"x": 1}, 5}

	h := magidict.Hook(arr).([2]any)
	assert.IsType(t, &magidict.Dict{}, h[0])
	assert.Equal(t, 5, h[1])
	// The source array value is untouched.
	assert.IsType(t, map[string]any{}, arr[0])
}

func TestHookTypedSlicePassesThrough(t *testing.T) {
	ts := []map[string]any{{"x": 1}}
	h := magidict.Hook(ts)

	assert.IsType(t, []map[string]any{}, h)
	assert.IsType(t, map[string]any{}, h.([]map[string]any)[0])
}

func TestHookAnyKeyedMap(t *testing.T) {
	src := map[any]any{1: "one", "two": map[string]any{"x": 1}}
	h := magidict.Hook(src)

	d, ok := h.(*magidict.Dict)
	require.True(t, ok)
	assert.Equal(t, "one", d.MGet(1))
	assert.IsType(t, &magidict.Dict{}, d.MGet("two"))
}

func TestEnchant(t *testing.T) {
	d := magidict.New(map[string]any{"a": 1})

	same, err := magidict.Enchant(d)
	require.NoError(t, err)
	assert.Same(t, d, same)

	conv, err := magidict.Enchant(map[string]any{"a": map[string]any{"b": 2}})
	require.NoError(t, err)
	assert.IsType(t, &magidict.Dict{}, conv.MGet("a"))

	_, err = magidict.Enchant(123)
	assert.True(t, magidict.IsCode(err, magidict.ErrType))
}

func TestNewNilMap(t *testing.T) {
	d := magidict.New(nil)
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.IsProtected())
}
