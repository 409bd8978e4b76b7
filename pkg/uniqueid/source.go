package uniqueid

// Source is a source of string identifiers.
type Source interface {
	// ID generates a new identifier.
	ID() (string, error)
}

// NewRandom returns a source producing collision-checked base62 identifiers.
// isUnique may be nil, in which case identifiers are UUID-backed and no
// collision check happens.
func NewRandom(isUnique IsUniqueString) Source {
	return &randomSource{isUnique: isUnique}
}

type randomSource struct {
	isUnique IsUniqueString
}

func (rs *randomSource) ID() (string, error) {
	return UniqueIDString(rs.isUnique, "")
}
