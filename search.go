package magidict

// SearchKey depth-first searches the Dict's entries and, recursively,
// every nested Dict, plain map and non-text sequence, returning the
// first value stored under a key equal to key.  Matching is by value
// equality.  fallback comes back unconverted when nothing matches
// anywhere in the tree.
func (d *Dict) SearchKey(key, fallback any) any {
	var found any
	hit := false
	searchValue(d, key, make(map[memoKey]bool), func(v any) bool {
		found = v
		hit = true
		return false
	})
	if hit {
		return found
	}
	return fallback
}

// SearchKeys is SearchKey collecting every match in traversal order
// instead of stopping at the first.
func (d *Dict) SearchKeys(key any) []any {
	out := []any{}
	searchValue(d, key, make(map[memoKey]bool), func(v any) bool {
		out = append(out, v)
		return true
	})
	return out
}

// searchValue walks v depth-first.  For each mapping entry the key is
// tested before descending into the value, so a match at depth n
// surfaces before any match inside it.  collect returns false to stop
// the walk; searchValue mirrors that in its own return value.
func searchValue(v, key any, seen map[memoKey]bool, collect func(any) bool) bool {
	if ik, ok := identityKey(v); ok {
		if seen[ik] {
			return true
		}
		seen[ik] = true
	}

	if m, ok := asMapping(v); ok {
		alive := true
		m.rangeEntries(func(k, val any) bool {
			if comparableKey(k) && comparableKey(key) && k == key {
				if !collect(val) {
					alive = false
					return false
				}
			}
			if !searchValue(val, key, seen, collect) {
				alive = false
				return false
			}
			return true
		})
		return alive
	}

	if seq, ok := sequenceOf(v); ok {
		for i := 0; i < seq.Len(); i++ {
			if !searchValue(seq.Index(i).Interface(), key, seen, collect) {
				return false
			}
		}
	}
	return true
}

// Filter returns a new mutable Dict holding the entries whose predicate
// came back true.  pred may be nil (keep entries whose value is not
// nil), a func(value any) bool, or a func(key, value any) bool; any
// other type fails with ERR_TYPE.  With dropEmpty set, entries whose
// value is an empty Dict, map or sequence are dropped as well.  The
// filter is shallow: nested Dicts are not descended into.
func (d *Dict) Filter(pred any, dropEmpty bool) (*Dict, error) {
	var fn func(k, v any) bool
	switch p := pred.(type) {
	case nil:
		fn = func(_, v any) bool { return v != nil }
	case func(any) bool:
		fn = func(_, v any) bool { return p(v) }
	case func(any, any) bool:
		fn = p
	default:
		return nil, newErr(ErrType, "filter predicate must be nil, func(any) bool or func(any, any) bool, got "+typeName(pred))
	}

	out := &Dict{}
	for _, k := range d.keys {
		v := d.m[k]
		if !fn(k, v) {
			continue
		}
		if dropEmpty && isEmptyContainer(v) {
			continue
		}
		out.rawSet(k, v)
	}
	return out, nil
}

func isEmptyContainer(v any) bool {
	if m, ok := asMapping(v); ok {
		return m.length() == 0
	}
	if s, ok := sequenceOf(v); ok {
		return s.Len() == 0
	}
	return false
}
