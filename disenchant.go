package magidict

import "reflect"

// Disenchant converts the Dict and everything nested in it back into
// plain form.  A Dict whose keys are all strings becomes a
// map[string]any (so the result feeds straight into JSON/YAML
// encoders); otherwise it becomes a map[any]any.  Unlike Hook, slices
// are rebuilt rather than mutated — the receiver tree is left intact.
func (d *Dict) Disenchant() any {
	return disenchantValue(d, make(memo))
}

// Disenchant is the free-function form, accepting any value tree.
func Disenchant(v any) any {
	return disenchantValue(v, make(memo))
}

func disenchantValue(v any, mm memo) any {
	if out, ok := mm.lookup(v); ok {
		return out
	}

	switch t := v.(type) {
	case nil:
		return nil

	case *Dict:
		return disenchantDict(t, mm)

	case map[string]any:
		out := make(map[string]any, len(t))
		mm.store(v, out)
		for k, val := range t {
			out[k] = disenchantValue(val, mm)
		}
		return out

	case map[any]any:
		out := make(map[any]any, len(t))
		mm.store(v, out)
		for k, val := range t {
			out[disenchantKey(k, mm)] = disenchantValue(val, mm)
		}
		return out

	case []any:
		out := make([]any, len(t))
		mm.store(v, out)
		for i, el := range t {
			out[i] = disenchantValue(el, mm)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if !anyElem(rv.Type()) {
			return v // cannot contain a Dict
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		mm.store(v, out.Interface())
		keyIsAny := rv.Type().Key().Kind() == reflect.Interface
		iter := rv.MapRange()
		for iter.Next() {
			kv := iter.Key()
			if keyIsAny {
				kv = valueOrZero(disenchantKey(iter.Key().Interface(), mm), rv.Type().Key())
			}
			ev := valueOrZero(disenchantValue(iter.Value().Interface(), mm), rv.Type().Elem())
			out.SetMapIndex(kv, ev)
		}
		return out.Interface()

	case reflect.Slice:
		if !anyElem(rv.Type()) {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		mm.store(v, out.Interface())
		for i := 0; i < rv.Len(); i++ {
			setAny(out.Index(i), disenchantValue(rv.Index(i).Interface(), mm))
		}
		return out.Interface()

	case reflect.Array:
		if !anyElem(rv.Type()) {
			return v
		}
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			setAny(out.Index(i), disenchantValue(rv.Index(i).Interface(), mm))
		}
		return out.Interface()
	}

	return v
}

func disenchantDict(d *Dict, mm memo) any {
	allString := true
	for _, k := range d.keys {
		if _, ok := k.(string); !ok {
			allString = false
			break
		}
	}

	if allString {
		out := make(map[string]any, len(d.keys))
		mm.store(d, out)
		for _, k := range d.keys {
			out[k.(string)] = disenchantValue(d.m[k], mm)
		}
		return out
	}

	out := make(map[any]any, len(d.keys))
	mm.store(d, out)
	for _, k := range d.keys {
		out[disenchantKey(k, mm)] = disenchantValue(d.m[k], mm)
	}
	return out
}

// disenchantKey disenchants a key only when the result stays usable as
// a Go map key.  A *Dict key would disenchant to a map, which is not
// comparable, so such keys are kept as-is instead of crashing.
func disenchantKey(k any, mm memo) any {
	out := disenchantValue(k, mm)
	if out == nil || reflect.TypeOf(out).Comparable() {
		return out
	}
	return k
}

func valueOrZero(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}
