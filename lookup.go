package magidict

import (
	"fmt"
	"strconv"
	"strings"
)

// Get is the strict accessor.  A direct hit returns the stored value,
// nil included.  On a miss, a string key containing '.' is retried as a
// dotted path ("a.b.0.c") where each segment is a map lookup or a
// bounds-checked sequence index.  Anything still absent fails with
// ERR_KEY_NOT_FOUND.
func (d *Dict) Get(key any) (any, error) {
	if v, ok := d.raw(key); ok {
		return v, nil
	}
	if s, ok := key.(string); ok && strings.Contains(s, ".") {
		cur := any(d)
		for _, tok := range strings.Split(s, ".") {
			next, err := stepStrict(cur, tok)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		return cur, nil
	}
	return nil, errKeyNotFound(key)
}

// GetPath walks a sequence of sub-keys strictly.  With no keys it
// returns the Dict itself.
func (d *Dict) GetPath(keys ...any) (any, error) {
	cur := any(d)
	for _, k := range keys {
		next, err := stepStrict(cur, k)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func stepStrict(cur, key any) (any, error) {
	if m, ok := asMapping(cur); ok {
		v, found := m.get(key)
		if !found {
			return nil, errKeyNotFound(key)
		}
		return v, nil
	}
	if seq, ok := sequenceOf(cur); ok {
		i, ok := indexOf(key)
		if !ok {
			return nil, newErr(ErrKeyNotFound, fmt.Sprintf("sequence index %v is not an integer", key))
		}
		if i < 0 || i >= seq.Len() {
			return nil, newErr(ErrKeyNotFound, fmt.Sprintf("sequence index %d out of range", i))
		}
		return seq.Index(i).Interface(), nil
	}
	return nil, newErr(ErrKeyNotFound, "cannot traverse value of type "+typeName(cur))
}

// MGet is the forgiving accessor for a single key: an absent key yields
// a StoodForMissing sentinel, a nil value a StoodForNull sentinel.  A
// plain map discovered under the key is hooked in place, so later
// lookups see the Dict.
func (d *Dict) MGet(key any) any {
	v, ok := d.raw(key)
	if !ok {
		return forMissing()
	}
	if v == nil {
		return forNull()
	}
	return d.promote(key, v)
}

// MGetDefault is MGet with an explicit fallback: an absent key returns
// fallback unconverted.  A nil value still yields the StoodForNull
// sentinel unless the fallback itself is nil, in which case the caller
// asked for real nils and gets one.
func (d *Dict) MGetDefault(key, fallback any) any {
	v, ok := d.raw(key)
	if !ok {
		return fallback
	}
	if v == nil {
		if fallback == nil {
			return nil
		}
		return forNull()
	}
	return d.promote(key, v)
}

// MGetPath walks a sequence of sub-keys forgivingly: any absent key,
// bad index or untraversable step yields a StoodForMissing sentinel,
// and a nil final value yields a StoodForNull sentinel.  Sentinels
// propagate — walking on from one just yields another.
func (d *Dict) MGetPath(keys ...any) any {
	cur := any(d)
	var parent *Dict
	var lastKey any
	for _, k := range keys {
		if m, ok := asMapping(cur); ok {
			v, found := m.get(k)
			if !found {
				return forMissing()
			}
			parent, lastKey = m.d, k
			cur = v
			continue
		}
		if seq, ok := sequenceOf(cur); ok {
			i, ok := indexOf(k)
			if !ok || i < 0 || i >= seq.Len() {
				return forMissing()
			}
			parent, lastKey = nil, nil
			cur = seq.Index(i).Interface()
			continue
		}
		return forMissing()
	}
	if cur == nil {
		return forNull()
	}
	if parent != nil {
		return parent.promote(lastKey, cur)
	}
	return cur
}

// promote hooks a plain map found under key and stores the Dict back in
// place of the original entry.  Other values return unchanged.
func (d *Dict) promote(key, v any) any {
	if _, isDict := v.(*Dict); isDict {
		return v
	}
	if m, ok := asMapping(v); ok && !m.isDict() {
		hooked := hookValue(v, make(memo))
		d.rawSet(key, hooked)
		return hooked
	}
	return v
}

// indexOf interprets a path sub-key as a sequence index.  Integer kinds
// pass through; strings parse in base 10; integral floats (JSON
// numbers) are accepted.
func indexOf(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	case float64:
		if k == float64(int(k)) {
			return int(k), true
		}
		return 0, false
	case string:
		i, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
