package magidict

import "github.com/ohler55/ojg/oj"

// FromJSON parses raw JSON and hooks the result.  The top-level value
// must be an object; parse failures surface as ERR_DECODE.
func FromJSON(raw []byte) (*Dict, error) {
	v, err := oj.Parse(raw)
	if err != nil {
		return nil, newErr(ErrDecode, "invalid JSON: "+err.Error())
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, newErr(ErrType, "top-level JSON value is not an object")
	}
	return New(m), nil
}

// ObjectHook is the decoder-callback boundary: given the plain map a
// JSON decoder produced for one object, return the Dict wrapping it.
// Decoders call it bottom-up, so nested objects are already Dicts by
// the time the enclosing object arrives — Hook's idempotence makes
// that free.
func ObjectHook(m map[string]any) *Dict {
	return New(m)
}

// MarshalJSON encodes the disenchanted tree.  A Dict holding
// non-string keys is not representable as JSON and fails with ERR_TYPE.
func (d *Dict) MarshalJSON() ([]byte, error) {
	plain := d.Disenchant()
	if _, ok := plain.(map[string]any); !ok {
		return nil, newErr(ErrType, "dict has non-string keys, not representable as a JSON object")
	}
	return []byte(oj.JSON(plain)), nil
}

// UnmarshalJSON replaces the receiver's entries with the hooked parse
// of raw.  Sentinels reject it like any other mutation.
func (d *Dict) UnmarshalJSON(raw []byte) error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	nd, err := FromJSON(raw)
	if err != nil {
		return err
	}
	d.keys, d.m = nd.keys, nd.m
	return nil
}
