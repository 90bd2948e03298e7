package chem

// Hybridization is the perceived orbital hybridization state of an atom,
// as reported by the external attribute source.
type Hybridization int

const (
	// HybridUnknown means the attribute source did not assign a state.
	HybridUnknown Hybridization = iota

	// HybridSP is linear sp hybridization.
	HybridSP

	// HybridSP2 is trigonal-planar sp2 hybridization.
	HybridSP2

	// HybridSP3 is tetrahedral sp3 hybridization.
	HybridSP3

	// HybridOther covers higher coordination states (sp3d, sp3d2, ...).
	HybridOther
)

// String returns a short human-readable label for the hybridization state.
func (h Hybridization) String() string {
	switch h {
	case HybridSP:
		return "sp"
	case HybridSP2:
		return "sp2"
	case HybridSP3:
		return "sp3"
	case HybridOther:
		return "other"
	default:
		return "unknown"
	}
}

// Atom is the read-only attribute view a typer needs to classify one atom.
//
// All values are *perceived* attributes: aromaticity, ring membership,
// hybridization and the degree counts come from an external
// molecular-structure library, never from this module. Implementations
// must return stable values for the lifetime of a classification call;
// typers never mutate the atom.
type Atom interface {
	// AtomicNum returns the atomic number (Z). Zero or negative means
	// "unknown element".
	AtomicNum() int

	// IsAromatic reports whether the atom belongs to an aromatic system.
	IsAromatic() bool

	// InRing reports whether the atom is a member of any ring.
	InRing() bool

	// Hybridization returns the perceived orbital hybridization state.
	Hybridization() Hybridization

	// ExplicitHCount returns the number of explicitly represented
	// attached hydrogens.
	ExplicitHCount() int

	// ImplicitHCount returns the number of implicit attached hydrogens.
	ImplicitHCount() int

	// HeavyDegree returns the number of bonded non-hydrogen neighbors.
	HeavyDegree() int

	// HeteroDegree returns the number of bonded neighbors that are
	// neither carbon nor hydrogen.
	HeteroDegree() int

	// FormalCharge returns the integer formal charge.
	FormalCharge() int

	// PartialCharge returns the floating-point partial charge.
	PartialCharge() float64

	// Radius returns the element-specific van der Waals / covalent
	// radius as known to the attribute source, in Ångström.
	Radius() float64
}

// AtomData is a plain-value Atom implementation.
//
// Use it when the attribute source hands over raw numbers rather than
// objects, or to build fixtures in tests. The zero value is a valid
// "unknown element" atom.
type AtomData struct {
	AtomicNumber int
	Aromatic     bool
	Ring         bool
	Hybrid       Hybridization
	ExplicitH    int
	ImplicitH    int
	HeavyDeg     int
	HeteroDeg    int
	Charge       int
	Partial      float64
	ElemRadius   float64
}

// NewAtomData returns an AtomData for the given atomic number with its
// element radius filled in from the covalent-radius table. All other
// attributes start at their zero values and may be set directly.
func NewAtomData(atomicNum int) AtomData {
	return AtomData{
		AtomicNumber: atomicNum,
		ElemRadius:   CovalentRadius(atomicNum),
	}
}

// AtomicNum implements Atom.
func (a AtomData) AtomicNum() int { return a.AtomicNumber }

// IsAromatic implements Atom.
func (a AtomData) IsAromatic() bool { return a.Aromatic }

// InRing implements Atom.
func (a AtomData) InRing() bool { return a.Ring }

// Hybridization implements Atom.
func (a AtomData) Hybridization() Hybridization { return a.Hybrid }

// ExplicitHCount implements Atom.
func (a AtomData) ExplicitHCount() int { return a.ExplicitH }

// ImplicitHCount implements Atom.
func (a AtomData) ImplicitHCount() int { return a.ImplicitH }

// HeavyDegree implements Atom.
func (a AtomData) HeavyDegree() int { return a.HeavyDeg }

// HeteroDegree implements Atom.
func (a AtomData) HeteroDegree() int { return a.HeteroDeg }

// FormalCharge implements Atom.
func (a AtomData) FormalCharge() int { return a.Charge }

// PartialCharge implements Atom.
func (a AtomData) PartialCharge() float64 { return a.Partial }

// Radius implements Atom.
func (a AtomData) Radius() float64 { return a.ElemRadius }
