package magidict

import "reflect"

// memo is the per-traversal identity cache used by hook, disenchant and
// deep copy.  It maps the reference identity of a source node to its
// already-computed counterpart, so cycles terminate and substructure
// shared in the source stays shared in the result.
//
// A memo must not outlive a single top-level traversal: reusing one
// across independent calls would alias unrelated conversions.
type memo map[memoKey]any

// memoKey is a stable stand-in for reference identity.  Maps and
// pointers are identified by address; slices by their backing-array
// address plus length, since two distinct slice headers can share a
// base pointer (s and s[:0]).
type memoKey struct {
	ptr  uintptr
	len  int
	kind reflect.Kind
}

// identityKey derives a memoKey for v.  ok is false for values without
// reference identity (scalars, strings, structs, arrays); those are
// never memoized, which is harmless because converting them is
// idempotent and they cannot participate in a cycle.
func identityKey(v any) (memoKey, bool) {
	if v == nil {
		return memoKey{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return memoKey{ptr: rv.Pointer(), len: -1, kind: rv.Kind()}, true
	case reflect.Slice:
		return memoKey{ptr: rv.Pointer(), len: rv.Len(), kind: reflect.Slice}, true
	default:
		return memoKey{}, false
	}
}

func (m memo) lookup(v any) (any, bool) {
	k, ok := identityKey(v)
	if !ok {
		return nil, false
	}
	out, hit := m[k]
	return out, hit
}

func (m memo) store(v, converted any) {
	if k, ok := identityKey(v); ok {
		m[k] = converted
	}
}
