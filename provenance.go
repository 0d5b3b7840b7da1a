package magidict

//go:generate go tool stringer -type=ProvenanceKind

// ProvenanceKind records where a Dict came from.  Normal is the only
// kind produced by construction and mutation; the other two tag the
// protected empty sentinels handed out by the forgiving accessors.
type ProvenanceKind uint8

const (
	// Normal marks an ordinary, mutable Dict.
	Normal ProvenanceKind = iota
	// StoodForNull marks a sentinel returned in place of a null value.
	StoodForNull
	// StoodForMissing marks a sentinel returned for an absent key or path.
	StoodForMissing
)

// forNull returns a fresh protected sentinel standing in for a null value.
func forNull() *Dict {
	return &Dict{prov: StoodForNull}
}

// forMissing returns a fresh protected sentinel standing in for a
// missing key or path.
func forMissing() *Dict {
	return &Dict{prov: StoodForMissing}
}
