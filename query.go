package magidict

import "github.com/ohler55/ojg/jp"

// Query runs a JSONPath selector over the disenchanted tree and
// returns every matching value, e.g. d.Query("$..name") or
// d.Query("users[0].id").  An unparseable selector fails with
// ERR_DECODE; a selector matching nothing returns an empty slice.
func (d *Dict) Query(selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, newErr(ErrDecode, "invalid jsonpath '"+selector+"': "+err.Error())
	}
	return x.Get(d.Disenchant()), nil
}
