package typing

import "github.com/atomforge/atomtype/chem"

// Unmapped is the sentinel a Mapper returns for origin categories it
// does not cover when no catch-all destination exists.
const Unmapped = -1

// IndexTyper reduces one atom to a discrete category index plus a
// physical radius.
//
// Implementations must be pure: Type depends only on the atom's current
// attributes and the typer's immutable tables, with no hidden state.
type IndexTyper interface {
	// NumTypes returns the size of the category space. Constant for a
	// given instance.
	NumTypes() int

	// Type classifies one atom, returning a category id in
	// [0, NumTypes()) and the atom's radius in Ångström. Type is total:
	// it never fails, every atom lands in some category.
	Type(a chem.Atom) (int, float64)

	// TypeNames returns one display name per category; index i names
	// category i and len equals NumTypes(). Not required to be fast;
	// implementations may rebuild the slice on each call.
	TypeNames() []string
}

// VectorTyper reduces one atom to a fixed-length numeric feature vector
// plus a physical radius.
type VectorTyper interface {
	// NumTypes returns the feature-vector length.
	NumTypes() int

	// VectorType overwrites out with the atom's feature vector and
	// returns the atom's radius. Every position is written; slots that
	// do not apply are explicitly zeroed. out is an exclusively-owned
	// buffer the caller allocates once and reuses across calls; the
	// callee never reads it. len(out) != NumTypes() is a programming
	// error and panics.
	VectorType(a chem.Atom, out []float64) float64

	// TypeNames returns one name per vector dimension.
	TypeNames() []string
}

// Mapper is a pure integer-to-integer remapping over a typer's category
// space, with its own destination-space vocabulary.
type Mapper interface {
	// NumTypes returns the size of the destination category space.
	// Zero means "no mapping / pass-through".
	NumTypes() int

	// MapType returns the destination category for an origin category,
	// or Unmapped when the origin is not covered and no catch-all
	// destination exists.
	MapType(origin int) int

	// TypeNames returns names in the destination space, or nil when the
	// mapper does not supply its own vocabulary.
	TypeNames() []string
}
