package typing

import "github.com/atomforge/atomtype/chem"

// MappedTyper composes one Mapper with one IndexTyper, producing a new
// IndexTyper whose category space is the mapper's destination space.
//
// The composite works against the abstract contracts only, so any mapper
// combines with any typer. The typer classifies first; its category id
// is then remapped while the radius passes through unchanged.
//
// When the mapper reports NumTypes() == 0 (pass-through), the composite
// falls back to the typer's own category space and names.
type MappedTyper[M Mapper, T IndexTyper] struct {
	mapper M
	typer  T
}

// NewMappedTyper wraps typer with mapper. Both are held by exclusive
// ownership; callers must not mutate them afterwards (the concrete
// implementations in this module are immutable anyway).
func NewMappedTyper[M Mapper, T IndexTyper](mapper M, typer T) *MappedTyper[M, T] {
	return &MappedTyper[M, T]{mapper: mapper, typer: typer}
}

// NumTypes delegates to the mapper, falling back to the wrapped typer
// when the mapper is a pass-through. Complexity: O(1).
func (mt *MappedTyper[M, T]) NumTypes() int {
	if n := mt.mapper.NumTypes(); n > 0 {
		return n
	}

	return mt.typer.NumTypes()
}

// Type classifies via the wrapped typer, then remaps the category id
// through the mapper. The radius passes through exactly.
func (mt *MappedTyper[M, T]) Type(a chem.Atom) (int, float64) {
	origin, radius := mt.typer.Type(a)

	return mt.mapper.MapType(origin), radius
}

// TypeNames delegates to the mapper's destination vocabulary. For a
// pass-through mapper it returns the wrapped typer's names instead. A
// non-pass-through mapper that supplies no vocabulary (e.g. a subset
// mapper) yields nil: destination labels are then the caller's to derive
// from the origin names.
func (mt *MappedTyper[M, T]) TypeNames() []string {
	if mt.mapper.NumTypes() > 0 {
		return mt.mapper.TypeNames()
	}

	return mt.typer.TypeNames()
}
