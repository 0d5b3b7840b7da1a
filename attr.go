package magidict

import "reflect"

// Attr exposes keys attribute-style, with a fixed resolution order:
//
//  1. the provenance flag names "standsForNull" and "standsForMissing"
//     always resolve to the boolean flags, whatever the keys hold;
//  2. a key in the backing mapping — nil values come back as a
//     StoodForNull sentinel, plain maps are hooked in place first;
//  3. an exported method of *Dict, returned as a bound func value;
//  4. otherwise a StoodForMissing sentinel.
//
// Step 4 is the forgiving part: chained access over absent names never
// fails, it just keeps producing protected empty Dicts.
func (d *Dict) Attr(name string) any {
	switch name {
	case "standsForNull":
		return d.StandsForNull()
	case "standsForMissing":
		return d.StandsForMissing()
	}
	if v, ok := d.raw(name); ok {
		if v == nil {
			return forNull()
		}
		return d.promote(name, v)
	}
	if mv := reflect.ValueOf(d).MethodByName(name); mv.IsValid() {
		return mv.Interface()
	}
	return forMissing()
}

// SetAttr always fails with ERR_ATTR_IMMUTABLE: the attribute surface
// is read-only, mutation goes through Set.
func (d *Dict) SetAttr(name string, value any) error {
	_ = value
	return newErr(ErrAttrImmutable, "attribute "+name+" is read-only; use Set")
}
