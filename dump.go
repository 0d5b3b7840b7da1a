package magidict

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent: "  ",
	// Show the raw structure instead of the String() rendering.
	DisableMethods: true,
	SortKeys:       true,
}

// Dump returns a deep diagnostic dump of the Dict's internals,
// including provenance tags of nested sentinels.  spew tracks visited
// pointers, so cyclic Dicts dump without diverging.
func (d *Dict) Dump() string {
	return dumpConfig.Sdump(d)
}
