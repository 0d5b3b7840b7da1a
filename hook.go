package magidict

import "reflect"

// Hook recursively converts a value tree into Dict form: every plain
// map becomes a Dict, []any slices are converted element-wise in place,
// and [N]any arrays are rebuilt with hooked elements.  Keys are
// preserved unchanged.  Anything unrecognized passes through with the
// same identity, so Hook is idempotent.
func Hook(v any) any {
	return hookValue(v, make(memo))
}

func hookValue(v any, mm memo) any {
	if out, ok := mm.lookup(v); ok {
		return out
	}

	switch t := v.(type) {
	case nil:
		return nil

	case *Dict:
		mm.store(v, t)
		return t

	case map[string]any:
		d := &Dict{}
		// Memoize before recursing so a self-referential map resolves
		// to the Dict under construction.
		mm.store(v, d)
		for k, val := range t {
			d.rawSet(k, hookValue(val, mm))
		}
		return d

	case map[any]any:
		d := &Dict{}
		mm.store(v, d)
		for k, val := range t {
			d.rawSet(k, hookValue(val, mm))
		}
		return d

	case []any:
		// Mutable sequences convert destructively: elements are
		// replaced in place and the slice keeps its identity.
		mm.store(v, t)
		for i, el := range t {
			t[i] = hookValue(el, mm)
		}
		return t
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		d := &Dict{}
		mm.store(v, d)
		iter := rv.MapRange()
		for iter.Next() {
			d.rawSet(iter.Key().Interface(), hookValue(iter.Value().Interface(), mm))
		}
		return d

	case reflect.Slice:
		// Named types with []any underlying convert in place like []any.
		// Slices whose element type cannot hold a *Dict pass through:
		// the conversion would be unrepresentable.
		if !anyElem(rv.Type()) {
			return v
		}
		mm.store(v, v)
		for i := 0; i < rv.Len(); i++ {
			setAny(rv.Index(i), hookValue(rv.Index(i).Interface(), mm))
		}
		return v

	case reflect.Array:
		// Arrays are values: build a new array of the same type, so
		// arity and any named type survive conversion.
		if !anyElem(rv.Type()) {
			return v
		}
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			setAny(out.Index(i), hookValue(rv.Index(i).Interface(), mm))
		}
		return out.Interface()
	}

	return v
}

// anyElem reports whether a container type's elements are plain
// interfaces, i.e. can hold a *Dict.
func anyElem(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Interface && e.NumMethod() == 0
}

func setAny(dst reflect.Value, v any) {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	dst.Set(reflect.ValueOf(v))
}
