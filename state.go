package magidict

import (
	"bytes"
	"encoding/gob"
)

// State is the snapshot shape crossing the persistence boundary: a
// shallow copy of the backing mapping (in insertion order) plus the two
// provenance flags.  The byte encoding of a State belongs to the
// persistence mechanism; the gob wiring below is one such mechanism.
type State struct {
	Data             []Pair
	StandsForNull    bool
	StandsForMissing bool
}

// ExportState captures a shallow snapshot of the Dict.  Values are
// shared, not copied.
func (d *Dict) ExportState() State {
	return State{
		Data:             d.Items(),
		StandsForNull:    d.StandsForNull(),
		StandsForMissing: d.StandsForMissing(),
	}
}

// ImportState reconstructs a Dict from a snapshot, re-hooking every
// value.  A snapshot with a provenance flag set yields the matching
// protected sentinel.
func ImportState(st State) *Dict {
	switch {
	case st.StandsForNull:
		return forNull()
	case st.StandsForMissing:
		return forMissing()
	}
	return NewPairs(st.Data...)
}

// GobEncode implements gob.GobEncoder over the State snapshot.  One
// gob limit applies: cyclic Dicts cannot be encoded, the stream format
// has no notion of reference identity.
func (d *Dict) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(d.ExportState()); err != nil {
		return nil, newErr(ErrCodec, "gob encode: "+err.Error())
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder, rebuilding the receiver from a
// State snapshot.
func (d *Dict) GobDecode(raw []byte) error {
	var st State
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&st); err != nil {
		return newErr(ErrCodec, "gob decode: "+err.Error())
	}
	nd := ImportState(st)
	d.keys, d.m, d.prov = nd.keys, nd.m, nd.prov
	return nil
}

func init() {
	// Concrete types that may sit in a State's interface slots.
	gob.Register(map[string]any{})
	gob.Register(map[any]any{})
	gob.Register([]any{})
	gob.Register(Pair{})
	gob.Register(&Dict{})
}
