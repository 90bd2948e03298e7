package mapper

// Identity is the pass-through mapper: every origin category maps to
// itself and NumTypes reports 0, signaling callers to keep the origin
// category space unchanged.
type Identity struct{}

// NumTypes returns 0 ("no mapping / pass-through").
func (Identity) NumTypes() int { return 0 }

// MapType returns origin unchanged.
func (Identity) MapType(origin int) int { return origin }

// TypeNames returns nil; an identity mapping has no vocabulary of its own.
func (Identity) TypeNames() []string { return nil }
