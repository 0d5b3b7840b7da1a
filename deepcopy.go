package magidict

import "reflect"

// DeepCopy returns a structurally independent copy of the Dict.  The
// copy preserves provenance (a copy of a sentinel is still a sentinel),
// shared substructure and cycles.  Scalars and containers whose element
// types cannot hold a Dict are shared, not duplicated.
func (d *Dict) DeepCopy() *Dict {
	return deepCopyValue(d, make(memo)).(*Dict)
}

func deepCopyValue(v any, mm memo) any {
	if out, ok := mm.lookup(v); ok {
		return out
	}

	switch t := v.(type) {
	case nil:
		return nil

	case *Dict:
		c := &Dict{prov: t.prov}
		mm.store(v, c)
		for _, k := range t.keys {
			c.rawSet(k, deepCopyValue(t.m[k], mm))
		}
		return c

	case map[string]any:
		out := make(map[string]any, len(t))
		mm.store(v, out)
		for k, val := range t {
			out[k] = deepCopyValue(val, mm)
		}
		return out

	case map[any]any:
		out := make(map[any]any, len(t))
		mm.store(v, out)
		for k, val := range t {
			out[k] = deepCopyValue(val, mm)
		}
		return out

	case []any:
		out := make([]any, len(t))
		mm.store(v, out)
		for i, el := range t {
			out[i] = deepCopyValue(el, mm)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if !anyElem(rv.Type()) {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		mm.store(v, out.Interface())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), valueOrZero(deepCopyValue(iter.Value().Interface(), mm), rv.Type().Elem()))
		}
		return out.Interface()

	case reflect.Slice:
		if !anyElem(rv.Type()) {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		mm.store(v, out.Interface())
		for i := 0; i < rv.Len(); i++ {
			setAny(out.Index(i), deepCopyValue(rv.Index(i).Interface(), mm))
		}
		return out.Interface()

	case reflect.Array:
		if !anyElem(rv.Type()) {
			return v
		}
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			setAny(out.Index(i), deepCopyValue(rv.Index(i).Interface(), mm))
		}
		return out.Interface()
	}

	return v
}
