package autodock

// Type identifies one of the 28 force-field atom categories.
type Type int

// The fixed category space. Ids are contiguous 0..NumTypes-1 and double
// as indices into the constant table.
const (
	Hydrogen Type = iota
	PolarHydrogen
	AliphaticCarbonXSHydrophobe
	AliphaticCarbonXSNonHydrophobe
	AromaticCarbonXSHydrophobe
	AromaticCarbonXSNonHydrophobe
	Nitrogen
	NitrogenXSDonor
	NitrogenXSDonorAcceptor
	NitrogenXSAcceptor
	Oxygen
	OxygenXSDonor
	OxygenXSDonorAcceptor
	OxygenXSAcceptor
	Sulfur
	SulfurAcceptor
	Phosphorus
	Fluorine
	Chlorine
	Bromine
	Iodine
	Magnesium
	Manganese
	Zinc
	Calcium
	Iron
	GenericMetal
	Boron

	// NumTypes is the size of the category space.
	NumTypes int = iota
)

// Info is the immutable constant record attached to one category.
//
// Name is the long unique name (>2 characters) used in human-readable
// type lists and mapping files; ShortName is the legacy two-character
// force-field code used for interoperability with AutoDock-era tools.
type Info struct {
	Name           string
	ShortName      string
	AtomicNum      int
	ADRadius       float64
	ADDepth        float64
	ADSolvation    float64
	ADVolume       float64
	CovalentRadius float64
	XSRadius       float64
	XSHydrophobe   bool
	XSDonor        bool
	XSAcceptor     bool
	ADHeteroatom   bool
}
