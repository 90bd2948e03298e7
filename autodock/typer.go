package autodock

import "github.com/atomforge/atomtype/chem"

// Option configures a Typer before construction.
type Option func(*Typer)

// WithCovalentRadius makes Type emit the covalent radius from the
// constant table instead of the XS cross-docking radius.
func WithCovalentRadius() Option {
	return func(t *Typer) { t.useCovalent = true }
}

// WithTable replaces the built-in constant table with an alternate one,
// enabling specialization or testing without a new typer type. The table
// must keep one record per category; it is copied and never mutated.
func WithTable(table [NumTypes]Info) Option {
	return func(t *Typer) { t.table = table }
}

// Typer is the 28-category force-field typer. Immutable after New; safe
// for unrestricted concurrent use.
type Typer struct {
	useCovalent bool
	table       [NumTypes]Info
}

// New creates a force-field typer over the built-in constant table.
// Complexity: O(1).
func New(opts ...Option) *Typer {
	t := &Typer{table: defaultTable}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NumTypes returns the size of the category space (always NumTypes).
func (t *Typer) NumTypes() int { return NumTypes }

// Info returns the full constant record for a category, for consumers
// that need the physical constants directly.
func (t *Typer) Info(typ Type) Info { return t.table[typ] }

// Type classifies one atom, returning its category id and radius.
//
// The radius is the XS cross-docking radius from the constant table, or
// the covalent radius when the typer was built WithCovalentRadius.
//
// Decision rules (all from perceived attributes, never computed here):
//
//   - hydrogen: polar (can donate) iff bonded to at least one heteroatom;
//   - carbon: aromatic iff the aromaticity flag is set or the atom is an
//     sp2 ring member; hydrophobic iff no heteroatom is attached;
//   - nitrogen: donor iff it carries an attached hydrogen; acceptor iff
//     formal charge ≤ 0 and heavy degree + hydrogen count ≤ 3 (a lone
//     pair remains); both set yields the donor-acceptor category;
//   - oxygen: donor iff it carries an attached hydrogen; acceptor iff
//     formal charge ≤ 0;
//   - sulfur: acceptor iff formal charge ≤ 0 and heavy degree ≤ 2;
//   - metals: Mg, Mn, Zn, Ca, Fe are enumerated; every other atomic
//     number outside the table routes to the GenericMetal catch-all, so
//     Type is total and never fails. Callers that must reject exotic
//     elements should pre-filter on AtomicNum.
func (t *Typer) Type(a chem.Atom) (int, float64) {
	typ := t.classify(a)
	radius := t.table[typ].XSRadius
	if t.useCovalent {
		radius = t.table[typ].CovalentRadius
	}

	return int(typ), radius
}

// TypeNames returns the 28 long category names in id order.
func (t *Typer) TypeNames() []string {
	names := make([]string, NumTypes)
	for i := range t.table {
		names[i] = t.table[i].Name
	}

	return names
}

// classify narrows by atomic number, then disambiguates on the perceived
// aromaticity, hydrogen counts, degrees and formal charge.
func (t *Typer) classify(a chem.Atom) Type {
	hcount := a.ExplicitHCount() + a.ImplicitHCount()

	switch a.AtomicNum() {
	case 1:
		if a.HeteroDegree() > 0 {
			return PolarHydrogen
		}

		return Hydrogen

	case 5:
		return Boron

	case 6:
		aromatic := a.IsAromatic() ||
			(a.Hybridization() == chem.HybridSP2 && a.InRing())
		hydrophobe := a.HeteroDegree() == 0
		switch {
		case aromatic && hydrophobe:
			return AromaticCarbonXSHydrophobe
		case aromatic:
			return AromaticCarbonXSNonHydrophobe
		case hydrophobe:
			return AliphaticCarbonXSHydrophobe
		default:
			return AliphaticCarbonXSNonHydrophobe
		}

	case 7:
		donor := hcount > 0
		acceptor := a.FormalCharge() <= 0 && a.HeavyDegree()+hcount <= 3
		switch {
		case donor && acceptor:
			return NitrogenXSDonorAcceptor
		case donor:
			return NitrogenXSDonor
		case acceptor:
			return NitrogenXSAcceptor
		default:
			return Nitrogen
		}

	case 8:
		donor := hcount > 0
		acceptor := a.FormalCharge() <= 0
		switch {
		case donor && acceptor:
			return OxygenXSDonorAcceptor
		case donor:
			return OxygenXSDonor
		case acceptor:
			return OxygenXSAcceptor
		default:
			return Oxygen
		}

	case 9:
		return Fluorine
	case 12:
		return Magnesium
	case 15:
		return Phosphorus
	case 16:
		if a.FormalCharge() <= 0 && a.HeavyDegree() <= 2 {
			return SulfurAcceptor
		}

		return Sulfur
	case 17:
		return Chlorine
	case 20:
		return Calcium
	case 25:
		return Manganese
	case 26:
		return Iron
	case 30:
		return Zinc
	case 35:
		return Bromine
	case 53:
		return Iodine
	default:
		// Catch-all: non-enumerated metals and unknown elements.
		return GenericMetal
	}
}
