package magidict

import (
	"fmt"
	"reflect"
	"strings"
)

// mapping is a uniform view over the two mapping shapes the walkers
// meet: a *Dict, or a plain Go map of any key/value kinds.  It exists
// so the lookup, search and equality walks share one access path
// instead of re-switching on both shapes at every step.
type mapping struct {
	d  *Dict
	rv reflect.Value
}

func asMapping(v any) (mapping, bool) {
	switch t := v.(type) {
	case nil:
		return mapping{}, false
	case *Dict:
		return mapping{d: t}, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return mapping{rv: rv}, true
	}
	return mapping{}, false
}

func (m mapping) isDict() bool { return m.d != nil }

func (m mapping) length() int {
	if m.d != nil {
		return m.d.Len()
	}
	return m.rv.Len()
}

// get performs a strict single-key lookup.  For plain maps the key must
// be assignable to the map's key type; a mismatch reads as absent, not
// as an error.
func (m mapping) get(key any) (any, bool) {
	if m.d != nil {
		return m.d.raw(key)
	}
	kt := m.rv.Type().Key()
	var kv reflect.Value
	if key == nil {
		if kt.Kind() != reflect.Interface {
			return nil, false
		}
		kv = reflect.Zero(kt)
	} else {
		kv = reflect.ValueOf(key)
		if !kv.Type().AssignableTo(kt) {
			return nil, false
		}
	}
	out := m.rv.MapIndex(kv)
	if !out.IsValid() {
		return nil, false
	}
	return out.Interface(), true
}

// rangeEntries visits every entry until fn returns false.  Dict entries
// come in insertion order; plain map entries in Go's map order.
func (m mapping) rangeEntries(fn func(k, v any) bool) {
	if m.d != nil {
		m.d.Range(fn)
		return
	}
	iter := m.rv.MapRange()
	for iter.Next() {
		if !fn(iter.Key().Interface(), iter.Value().Interface()) {
			return
		}
	}
}

// sequenceOf returns a reflect view of v when it is an indexable
// sequence.  Strings and byte slices are data, not sequences, and are
// excluded.
func sequenceOf(v any) (reflect.Value, bool) {
	switch v.(type) {
	case nil, string, []byte:
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv, true
	}
	return reflect.Value{}, false
}

func writeScalar(sb *strings.Builder, v any) {
	fmt.Fprintf(sb, "%v", v)
}
