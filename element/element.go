package element

import "github.com/atomforge/atomtype/chem"

// DefaultMaxElement is the category-space size used when New is given a
// non-positive maximum.
const DefaultMaxElement = 84

// Typer maps each atom to its atomic number, with category 0 reserved as
// the shared "unknown/other" catch-all.
type Typer struct {
	maxElem int
}

// New creates an element-number typer with the given category-space
// size. maxElem ≤ 0 selects DefaultMaxElement. Complexity: O(1).
func New(maxElem int) *Typer {
	if maxElem <= 0 {
		maxElem = DefaultMaxElement
	}

	return &Typer{maxElem: maxElem}
}

// NumTypes returns the configured maximum element count.
func (t *Typer) NumTypes() int { return t.maxElem }

// Type returns the atomic number as the category id, or 0 when the
// atomic number is outside [1, NumTypes()). The radius is the element
// radius the attribute source reports for the actual atom, even for
// catch-all hits.
func (t *Typer) Type(a chem.Atom) (int, float64) {
	id := a.AtomicNum()
	if id <= 0 || id >= t.maxElem {
		id = 0
	}

	return id, a.Radius()
}

// TypeNames returns "Unknown" for category 0 followed by the element
// symbols in atomic-number order.
func (t *Typer) TypeNames() []string {
	names := make([]string, t.maxElem)
	names[0] = "Unknown"
	for i := 1; i < t.maxElem; i++ {
		names[i] = chem.Symbol(i)
	}

	return names
}
