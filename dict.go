// Package magidict implements a forgiving associative container: a
// recursive, mutable key/value structure with safe access paths that
// never fail on a missing key or a nil value.
//
// The model has three moving parts:
//
//   - Dict     — the container itself.  Construction recursively
//     converts ("hooks") every nested plain map reachable from the
//     source into a Dict, including maps inside slices and arrays.
//   - Sentinels — protected, empty Dicts returned by the forgiving
//     accessors in place of an error, tagged StoodForNull or
//     StoodForMissing.  Further forgiving lookups chain through them
//     without failing.
//   - Conversion engine — Hook (plain→Dict), Disenchant (Dict→plain)
//     and DeepCopy, all driven by a per-traversal identity memo so
//     reference cycles terminate and shared substructure stays shared.
//
// Access comes in two strict/forgiving families.  Get and GetPath fail
// with ERR_KEY_NOT_FOUND on an absent key or path and return real
// values (including nil).  MGet, MGetPath and Attr never fail: an
// absent key yields a StoodForMissing sentinel, a nil value yields a
// StoodForNull sentinel, and both are empty, read-only Dicts.
//
// Mutation goes through Set, Delete, Update, Pop, Clear and friends,
// each of which hooks the incoming value and refuses to touch a
// sentinel (ERR_PROTECTED_MUTATION).
package magidict

import (
	"reflect"
	"strings"
)

// Pair is a single key/value entry, used by the pair-based constructor
// and by Items.
type Pair struct {
	Key   any
	Value any
}

// Dict is the forgiving container.  Keys may be any comparable value;
// iteration follows insertion order.  The zero value is an empty,
// mutable Dict.
type Dict struct {
	keys []any // insertion order
	m    map[any]any
	prov ProvenanceKind
}

// New builds a Dict from a plain map, recursively hooking every nested
// map, slice and array.  A nil map gives an empty Dict.  The memo spans
// the whole construction, so a map that references itself converts into
// a Dict whose entry is the Dict itself.
func New(src map[string]any) *Dict {
	d := &Dict{}
	if src == nil {
		return d
	}
	mm := make(memo)
	mm.store(src, d)
	for k, v := range src {
		d.rawSet(k, hookValue(v, mm))
	}
	return d
}

// NewPairs builds a Dict from key/value pairs, hooking each value.
// Later pairs overwrite earlier ones with the same key.  Pairs whose
// key is of non-comparable dynamic type are skipped; the
// error-returning entry points (Set, Update) reject such keys with
// ERR_TYPE instead.
func NewPairs(pairs ...Pair) *Dict {
	d := &Dict{}
	mm := make(memo)
	for _, p := range pairs {
		if !comparableKey(p.Key) {
			continue
		}
		d.rawSet(p.Key, hookValue(p.Value, mm))
	}
	return d
}

// Enchant converts a plain map of any kind into a Dict.  A *Dict passes
// through unchanged; anything that is not a map is rejected with
// ERR_TYPE.
func Enchant(v any) (*Dict, error) {
	switch t := v.(type) {
	case *Dict:
		return t, nil
	case map[string]any:
		return New(t), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, newErr(ErrType, "enchant expects a map, got "+typeName(v))
	}
	return hookValue(v, make(memo)).(*Dict), nil
}

// FromKeys builds a Dict mapping every key to value.  The value is
// hooked per key with a fresh memo, so map values become independent
// Dicts while in-place-converted slices stay shared.  Keys of
// non-comparable dynamic type are skipped, like in NewPairs.
func FromKeys(keys []any, value any) *Dict {
	d := &Dict{}
	for _, k := range keys {
		if !comparableKey(k) {
			continue
		}
		d.rawSet(k, Hook(value))
	}
	return d
}

// Provenance returns the Dict's provenance tag.
func (d *Dict) Provenance() ProvenanceKind { return d.prov }

// StandsForNull reports whether this Dict is a sentinel for a nil value.
func (d *Dict) StandsForNull() bool { return d.prov == StoodForNull }

// StandsForMissing reports whether this Dict is a sentinel for an
// absent key or path.
func (d *Dict) StandsForMissing() bool { return d.prov == StoodForMissing }

// IsProtected reports whether mutation is rejected on this Dict.
func (d *Dict) IsProtected() bool { return d.prov != Normal }

func (d *Dict) checkMutable() error {
	if d.prov != Normal {
		return errProtected()
	}
	return nil
}

// ── storage primitives ──────────────────────────────────────

// rawSet inserts bypassing both the protection guard and the hook.
// New keys append to the order slice; existing keys keep their slot.
func (d *Dict) rawSet(key, value any) {
	if d.m == nil {
		d.m = make(map[any]any)
	}
	if _, ok := d.m[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.m[key] = value
}

// raw looks a key up without any path or sentinel logic.  Keys of
// non-comparable dynamic type are never present.
func (d *Dict) raw(key any) (any, bool) {
	if d.m == nil || !comparableKey(key) {
		return nil, false
	}
	v, ok := d.m[key]
	return v, ok
}

func (d *Dict) rawDelete(key any) {
	delete(d.m, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

func comparableKey(k any) bool {
	if k == nil {
		return true
	}
	return reflect.TypeOf(k).Comparable()
}

// ── mutation ────────────────────────────────────────────────

// Set inserts or replaces a key, hooking the value first.  Fails with
// ERR_PROTECTED_MUTATION on a sentinel and ERR_TYPE for a key whose
// dynamic type is not comparable.
func (d *Dict) Set(key, value any) error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	if !comparableKey(key) {
		return newErr(ErrType, "key of non-comparable type "+typeName(key))
	}
	d.rawSet(key, Hook(value))
	return nil
}

// Delete removes a key.  Absent keys fail with ERR_KEY_NOT_FOUND.
func (d *Dict) Delete(key any) error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	if _, ok := d.raw(key); !ok {
		return errKeyNotFound(key)
	}
	d.rawDelete(key)
	return nil
}

// Update merges the entries of src (a *Dict or any plain map) into d,
// hooking each value.
func (d *Dict) Update(src any) error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	m, ok := asMapping(src)
	if !ok {
		return newErr(ErrType, "update expects a map or *Dict, got "+typeName(src))
	}
	var setErr error
	m.rangeEntries(func(k, v any) bool {
		setErr = d.Set(k, v)
		return setErr == nil
	})
	return setErr
}

// UpdatePairs merges name/value pairs into d, hooking each value.
func (d *Dict) UpdatePairs(pairs ...Pair) error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := d.Set(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes a key and returns its value.  Absent keys fail with
// ERR_KEY_NOT_FOUND.
func (d *Dict) Pop(key any) (any, error) {
	if err := d.checkMutable(); err != nil {
		return nil, err
	}
	v, ok := d.raw(key)
	if !ok {
		return nil, errKeyNotFound(key)
	}
	d.rawDelete(key)
	return v, nil
}

// PopDefault removes a key and returns its value, or returns fallback
// (unconverted) when the key is absent.
func (d *Dict) PopDefault(key, fallback any) (any, error) {
	if err := d.checkMutable(); err != nil {
		return nil, err
	}
	v, ok := d.raw(key)
	if !ok {
		return fallback, nil
	}
	d.rawDelete(key)
	return v, nil
}

// PopItem removes and returns the most recently inserted entry.
// An empty Dict fails with ERR_KEY_NOT_FOUND.
func (d *Dict) PopItem() (Pair, error) {
	if err := d.checkMutable(); err != nil {
		return Pair{}, err
	}
	if len(d.keys) == 0 {
		return Pair{}, newErr(ErrKeyNotFound, "pop from empty dict")
	}
	k := d.keys[len(d.keys)-1]
	v := d.m[k]
	d.rawDelete(k)
	return Pair{Key: k, Value: v}, nil
}

// Clear removes every entry.
func (d *Dict) Clear() error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	d.keys = nil
	d.m = nil
	return nil
}

// SetDefault returns the value for key, inserting the hooked fallback
// first when the key is absent.
func (d *Dict) SetDefault(key, fallback any) (any, error) {
	if err := d.checkMutable(); err != nil {
		return nil, err
	}
	if v, ok := d.raw(key); ok {
		return v, nil
	}
	if !comparableKey(key) {
		return nil, newErr(ErrType, "key of non-comparable type "+typeName(key))
	}
	hooked := Hook(fallback)
	d.rawSet(key, hooked)
	return hooked, nil
}

// ── non-mutating combinators ────────────────────────────────

// Copy returns a shallow copy: a new mutable Dict sharing the same
// values.  Provenance is not carried; the copy is always Normal.
func (d *Dict) Copy() *Dict {
	c := &Dict{}
	for _, k := range d.keys {
		c.rawSet(k, d.m[k])
	}
	return c
}

// Merged returns a new Dict holding d's entries overlaid with src's.
// Neither input is modified.
func (d *Dict) Merged(src any) (*Dict, error) {
	c := d.Copy()
	if err := c.Update(src); err != nil {
		return nil, err
	}
	return c, nil
}

// ── iteration ───────────────────────────────────────────────

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Has reports whether key is present.
func (d *Dict) Has(key any) bool {
	_, ok := d.raw(key)
	return ok
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []any {
	out := make([]any, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns the values in insertion order.
func (d *Dict) Values() []any {
	out := make([]any, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.m[k])
	}
	return out
}

// Items returns the entries in insertion order.
func (d *Dict) Items() []Pair {
	out := make([]Pair, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Pair{Key: k, Value: d.m[k]})
	}
	return out
}

// Range calls fn for every entry in insertion order until fn returns
// false.
func (d *Dict) Range(fn func(key, value any) bool) {
	for _, k := range d.keys {
		if !fn(k, d.m[k]) {
			return
		}
	}
}

// ── equality and representation ─────────────────────────────

// Equal reports structural equality between d and other (a *Dict or a
// plain map).  Provenance tags and insertion order are not part of
// equality.  Cyclic structures compare without diverging.
func (d *Dict) Equal(other any) bool {
	return equalValue(d, other, make(map[visitPair]bool))
}

type visitPair struct {
	a, b memoKey
}

func equalValue(a, b any, seen map[visitPair]bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	am, aok := asMapping(a)
	bm, bok := asMapping(b)
	if aok || bok {
		if !aok || !bok || am.length() != bm.length() {
			return false
		}
		ka, kaOK := identityKey(a)
		kb, kbOK := identityKey(b)
		if kaOK && kbOK {
			vp := visitPair{a: ka, b: kb}
			if seen[vp] {
				return true // already comparing this pair higher up the walk
			}
			seen[vp] = true
		}
		eq := true
		am.rangeEntries(func(k, va any) bool {
			vb, ok := bm.get(k)
			if !ok || !equalValue(va, vb, seen) {
				eq = false
			}
			return eq
		})
		return eq
	}

	sa, saOK := sequenceOf(a)
	sb, sbOK := sequenceOf(b)
	if saOK || sbOK {
		if !saOK || !sbOK || sa.Len() != sb.Len() {
			return false
		}
		ka, kaOK := identityKey(a)
		kb, kbOK := identityKey(b)
		if kaOK && kbOK {
			vp := visitPair{a: ka, b: kb}
			if seen[vp] {
				return true
			}
			seen[vp] = true
		}
		for i := 0; i < sa.Len(); i++ {
			if !equalValue(sa.Index(i).Interface(), sb.Index(i).Interface(), seen) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

// String renders the Dict as Dict(map[k:v ...]) with entries in
// insertion order.  Cycles render as Dict(...).
func (d *Dict) String() string {
	var sb strings.Builder
	writeRepr(&sb, d, make(map[memoKey]bool))
	return sb.String()
}

func writeRepr(sb *strings.Builder, v any, seen map[memoKey]bool) {
	if v == nil {
		sb.WriteString("<nil>")
		return
	}

	if dd, ok := v.(*Dict); ok {
		k, _ := identityKey(dd)
		if seen[k] {
			sb.WriteString("Dict(...)")
			return
		}
		seen[k] = true
		defer delete(seen, k)
		sb.WriteString("Dict(map[")
		for i, key := range dd.keys {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeRepr(sb, key, seen)
			sb.WriteByte(':')
			writeRepr(sb, dd.m[key], seen)
		}
		sb.WriteString("])")
		return
	}

	if _, isStr := v.(string); !isStr {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Map:
			k, ok := identityKey(v)
			if ok && seen[k] {
				sb.WriteString("map[...]")
				return
			}
			if ok {
				seen[k] = true
				defer delete(seen, k)
			}
			sb.WriteString("map[")
			first := true
			iter := rv.MapRange()
			for iter.Next() {
				if !first {
					sb.WriteByte(' ')
				}
				first = false
				writeRepr(sb, iter.Key().Interface(), seen)
				sb.WriteByte(':')
				writeRepr(sb, iter.Value().Interface(), seen)
			}
			sb.WriteByte(']')
			return
		case reflect.Slice, reflect.Array:
			if _, isBytes := v.([]byte); isBytes {
				break
			}
			k, ok := identityKey(v)
			if ok && seen[k] {
				sb.WriteString("[...]")
				return
			}
			if ok {
				seen[k] = true
				defer delete(seen, k)
			}
			sb.WriteByte('[')
			for i := 0; i < rv.Len(); i++ {
				if i > 0 {
					sb.WriteByte(' ')
				}
				writeRepr(sb, rv.Index(i).Interface(), seen)
			}
			sb.WriteByte(']')
			return
		}
	}

	writeScalar(sb, v)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
