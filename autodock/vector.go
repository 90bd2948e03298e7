package autodock

import (
	"fmt"

	"github.com/atomforge/atomtype/chem"
)

// Vector slots emitted by VectorTyper, in output order: 17 one-hot
// element slots, four continuous slots, four boolean slots, and the
// partial charge.
const (
	VecHydrogen = iota
	VecCarbon
	VecNitrogen
	VecOxygen
	VecSulfur
	VecPhosphorus
	VecFluorine
	VecChlorine
	VecBromine
	VecIodine
	VecMagnesium
	VecManganese
	VecZinc
	VecCalcium
	VecIron
	VecBoron
	VecGenericAtom
	VecADDepth
	VecADSolvation
	VecADVolume
	VecXSRadius
	VecXSHydrophobe
	VecXSDonor
	VecXSAcceptor
	VecADHeteroatom
	VecPartialCharge

	// NumVectorTypes is the feature-vector length.
	NumVectorTypes int = iota
)

// vecNames holds one label per vector slot, used for tensor channels.
var vecNames = [NumVectorTypes]string{
	"Hydrogen", "Carbon", "Nitrogen", "Oxygen", "Sulfur", "Phosphorus",
	"Fluorine", "Chlorine", "Bromine", "Iodine", "Magnesium", "Manganese",
	"Zinc", "Calcium", "Iron", "Boron", "GenericAtom",
	"ADDepth", "ADSolvation", "ADVolume", "XSRadius",
	"XSHydrophobe", "XSDonor", "XSAcceptor", "ADHeteroatom",
	"PartialCharge",
}

// elementSlot collapses the 28 categories onto the 17 one-hot element
// slots (both carbon subtypes share VecCarbon, all nitrogens share
// VecNitrogen, and so on).
var elementSlot = [NumTypes]int{
	Hydrogen:                       VecHydrogen,
	PolarHydrogen:                  VecHydrogen,
	AliphaticCarbonXSHydrophobe:    VecCarbon,
	AliphaticCarbonXSNonHydrophobe: VecCarbon,
	AromaticCarbonXSHydrophobe:     VecCarbon,
	AromaticCarbonXSNonHydrophobe:  VecCarbon,
	Nitrogen:                       VecNitrogen,
	NitrogenXSDonor:                VecNitrogen,
	NitrogenXSDonorAcceptor:        VecNitrogen,
	NitrogenXSAcceptor:             VecNitrogen,
	Oxygen:                         VecOxygen,
	OxygenXSDonor:                  VecOxygen,
	OxygenXSDonorAcceptor:          VecOxygen,
	OxygenXSAcceptor:               VecOxygen,
	Sulfur:                         VecSulfur,
	SulfurAcceptor:                 VecSulfur,
	Phosphorus:                     VecPhosphorus,
	Fluorine:                       VecFluorine,
	Chlorine:                       VecChlorine,
	Bromine:                        VecBromine,
	Iodine:                         VecIodine,
	Magnesium:                      VecMagnesium,
	Manganese:                      VecManganese,
	Zinc:                           VecZinc,
	Calcium:                        VecCalcium,
	Iron:                           VecIron,
	GenericMetal:                   VecGenericAtom,
	Boron:                          VecBoron,
}

// VectorTyper decomposes the categorical classification into a 26-slot
// feature vector. It owns its underlying Typer exclusively and is
// immutable after construction.
type VectorTyper struct {
	typer *Typer
}

// NewVectorTyper builds a vector typer over a fresh default Typer
// configured by opts (the same options New accepts).
func NewVectorTyper(opts ...Option) *VectorTyper {
	return &VectorTyper{typer: New(opts...)}
}

// NumTypes returns the feature-vector length (always NumVectorTypes).
func (v *VectorTyper) NumTypes() int { return NumVectorTypes }

// VectorType fills out with the atom's feature vector and returns the
// radius the underlying categorical typer produced.
//
// Every slot is written: exactly one element one-hot slot is 1, boolean
// slots are exactly 0 or 1, continuous slots copy the constant record,
// VecXSRadius carries the inferred radius, and VecPartialCharge comes
// straight from the attribute source. len(out) != NumTypes() is a
// programming error and panics.
func (v *VectorTyper) VectorType(a chem.Atom, out []float64) float64 {
	if len(out) != NumVectorTypes {
		panic(fmt.Sprintf(
			"autodock: vector buffer length %d, want %d", len(out), NumVectorTypes))
	}
	for i := range out {
		out[i] = 0
	}

	id, radius := v.typer.Type(a)
	info := v.typer.Info(Type(id))

	out[elementSlot[id]] = 1
	out[VecADDepth] = info.ADDepth
	out[VecADSolvation] = info.ADSolvation
	out[VecADVolume] = info.ADVolume
	out[VecXSRadius] = radius
	out[VecXSHydrophobe] = boolToFloat(info.XSHydrophobe)
	out[VecXSDonor] = boolToFloat(info.XSDonor)
	out[VecXSAcceptor] = boolToFloat(info.XSAcceptor)
	out[VecADHeteroatom] = boolToFloat(info.ADHeteroatom)
	out[VecPartialCharge] = a.PartialCharge()

	return radius
}

// TypeNames returns one label per vector dimension, in slot order.
func (v *VectorTyper) TypeNames() []string {
	names := make([]string, NumVectorTypes)
	copy(names, vecNames[:])

	return names
}

// boolToFloat encodes a flag as exactly 0.0 or 1.0.
func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
