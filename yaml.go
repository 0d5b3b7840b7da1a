package magidict

import "gopkg.in/yaml.v3"

// FromYAML parses a YAML document whose root is a mapping and hooks the
// result.  A malformed document fails with ERR_DECODE, a well-formed
// one whose root is not a mapping with ERR_TYPE.
func FromYAML(raw []byte) (*Dict, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, newErr(ErrDecode, "invalid YAML: "+err.Error())
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, newErr(ErrType, "YAML root is not a mapping, got "+typeName(v))
	}
	return New(m), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, so a *Dict field decodes
// straight from a YAML mapping node.
func (d *Dict) UnmarshalYAML(node *yaml.Node) error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return newErr(ErrDecode, "invalid YAML mapping: "+err.Error())
	}
	nd := New(m)
	d.keys, d.m = nd.keys, nd.m
	return nil
}

// MarshalYAML implements yaml.Marshaler via the disenchanted tree.
func (d *Dict) MarshalYAML() (any, error) {
	return d.Disenchant(), nil
}
