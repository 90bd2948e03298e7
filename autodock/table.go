package autodock

// defaultTable is the process-wide constant table: exactly one record per
// category, indexed by Type. Values follow the AutoDock4 parameter set
// with XS radii and role flags from the XS scoring conventions. Never
// mutated; alternate tables are injected via WithTable.
var defaultTable = [NumTypes]Info{
	Hydrogen: {
		Name: "Hydrogen", ShortName: "H", AtomicNum: 1,
		ADRadius: 1.000, ADDepth: 0.020, ADSolvation: 0.000510,
		ADVolume: 0.0000, CovalentRadius: 0.37, XSRadius: 0.0,
	},
	PolarHydrogen: {
		Name: "PolarHydrogen", ShortName: "HD", AtomicNum: 1,
		ADRadius: 1.000, ADDepth: 0.020, ADSolvation: 0.000510,
		ADVolume: 0.0000, CovalentRadius: 0.37, XSRadius: 0.0,
	},
	AliphaticCarbonXSHydrophobe: {
		Name: "AliphaticCarbonXSHydrophobe", ShortName: "C", AtomicNum: 6,
		ADRadius: 2.000, ADDepth: 0.150, ADSolvation: -0.001430,
		ADVolume: 33.5103, CovalentRadius: 0.77, XSRadius: 1.9,
		XSHydrophobe: true,
	},
	AliphaticCarbonXSNonHydrophobe: {
		Name: "AliphaticCarbonXSNonHydrophobe", ShortName: "C", AtomicNum: 6,
		ADRadius: 2.000, ADDepth: 0.150, ADSolvation: -0.001430,
		ADVolume: 33.5103, CovalentRadius: 0.77, XSRadius: 1.9,
	},
	AromaticCarbonXSHydrophobe: {
		Name: "AromaticCarbonXSHydrophobe", ShortName: "A", AtomicNum: 6,
		ADRadius: 2.000, ADDepth: 0.150, ADSolvation: -0.000520,
		ADVolume: 33.5103, CovalentRadius: 0.77, XSRadius: 1.9,
		XSHydrophobe: true,
	},
	AromaticCarbonXSNonHydrophobe: {
		Name: "AromaticCarbonXSNonHydrophobe", ShortName: "A", AtomicNum: 6,
		ADRadius: 2.000, ADDepth: 0.150, ADSolvation: -0.000520,
		ADVolume: 33.5103, CovalentRadius: 0.77, XSRadius: 1.9,
	},
	Nitrogen: {
		Name: "Nitrogen", ShortName: "N", AtomicNum: 7,
		ADRadius: 1.750, ADDepth: 0.160, ADSolvation: -0.001620,
		ADVolume: 22.4493, CovalentRadius: 0.75, XSRadius: 1.8,
		ADHeteroatom: true,
	},
	NitrogenXSDonor: {
		Name: "NitrogenXSDonor", ShortName: "N", AtomicNum: 7,
		ADRadius: 1.750, ADDepth: 0.160, ADSolvation: -0.001620,
		ADVolume: 22.4493, CovalentRadius: 0.75, XSRadius: 1.8,
		XSDonor: true, ADHeteroatom: true,
	},
	NitrogenXSDonorAcceptor: {
		Name: "NitrogenXSDonorAcceptor", ShortName: "NA", AtomicNum: 7,
		ADRadius: 1.750, ADDepth: 0.160, ADSolvation: -0.001620,
		ADVolume: 22.4493, CovalentRadius: 0.75, XSRadius: 1.8,
		XSDonor: true, XSAcceptor: true, ADHeteroatom: true,
	},
	NitrogenXSAcceptor: {
		Name: "NitrogenXSAcceptor", ShortName: "NA", AtomicNum: 7,
		ADRadius: 1.750, ADDepth: 0.160, ADSolvation: -0.001620,
		ADVolume: 22.4493, CovalentRadius: 0.75, XSRadius: 1.8,
		XSAcceptor: true, ADHeteroatom: true,
	},
	Oxygen: {
		Name: "Oxygen", ShortName: "O", AtomicNum: 8,
		ADRadius: 1.600, ADDepth: 0.200, ADSolvation: -0.002510,
		ADVolume: 17.1573, CovalentRadius: 0.73, XSRadius: 1.7,
		ADHeteroatom: true,
	},
	OxygenXSDonor: {
		Name: "OxygenXSDonor", ShortName: "O", AtomicNum: 8,
		ADRadius: 1.600, ADDepth: 0.200, ADSolvation: -0.002510,
		ADVolume: 17.1573, CovalentRadius: 0.73, XSRadius: 1.7,
		XSDonor: true, ADHeteroatom: true,
	},
	OxygenXSDonorAcceptor: {
		Name: "OxygenXSDonorAcceptor", ShortName: "OA", AtomicNum: 8,
		ADRadius: 1.600, ADDepth: 0.200, ADSolvation: -0.002510,
		ADVolume: 17.1573, CovalentRadius: 0.73, XSRadius: 1.7,
		XSDonor: true, XSAcceptor: true, ADHeteroatom: true,
	},
	OxygenXSAcceptor: {
		Name: "OxygenXSAcceptor", ShortName: "OA", AtomicNum: 8,
		ADRadius: 1.600, ADDepth: 0.200, ADSolvation: -0.002510,
		ADVolume: 17.1573, CovalentRadius: 0.73, XSRadius: 1.7,
		XSAcceptor: true, ADHeteroatom: true,
	},
	Sulfur: {
		Name: "Sulfur", ShortName: "S", AtomicNum: 16,
		ADRadius: 2.000, ADDepth: 0.200, ADSolvation: -0.002140,
		ADVolume: 33.5103, CovalentRadius: 1.02, XSRadius: 2.0,
		ADHeteroatom: true,
	},
	// XS scoring has no sulfur acceptors; the category exists for the
	// AutoDock side only, so the XS role flags stay clear.
	SulfurAcceptor: {
		Name: "SulfurAcceptor", ShortName: "SA", AtomicNum: 16,
		ADRadius: 2.000, ADDepth: 0.200, ADSolvation: -0.002140,
		ADVolume: 33.5103, CovalentRadius: 1.02, XSRadius: 2.0,
		ADHeteroatom: true,
	},
	Phosphorus: {
		Name: "Phosphorus", ShortName: "P", AtomicNum: 15,
		ADRadius: 2.100, ADDepth: 0.200, ADSolvation: -0.001100,
		ADVolume: 38.7924, CovalentRadius: 1.06, XSRadius: 2.1,
		ADHeteroatom: true,
	},
	Fluorine: {
		Name: "Fluorine", ShortName: "F", AtomicNum: 9,
		ADRadius: 1.545, ADDepth: 0.080, ADSolvation: -0.001100,
		ADVolume: 15.4480, CovalentRadius: 0.71, XSRadius: 1.5,
		XSHydrophobe: true, ADHeteroatom: true,
	},
	Chlorine: {
		Name: "Chlorine", ShortName: "Cl", AtomicNum: 17,
		ADRadius: 2.045, ADDepth: 0.276, ADSolvation: -0.001100,
		ADVolume: 35.8235, CovalentRadius: 0.99, XSRadius: 1.8,
		XSHydrophobe: true, ADHeteroatom: true,
	},
	Bromine: {
		Name: "Bromine", ShortName: "Br", AtomicNum: 35,
		ADRadius: 2.165, ADDepth: 0.389, ADSolvation: -0.001100,
		ADVolume: 42.5661, CovalentRadius: 1.14, XSRadius: 2.0,
		XSHydrophobe: true, ADHeteroatom: true,
	},
	Iodine: {
		Name: "Iodine", ShortName: "I", AtomicNum: 53,
		ADRadius: 2.360, ADDepth: 0.550, ADSolvation: -0.001100,
		ADVolume: 55.0585, CovalentRadius: 1.33, XSRadius: 2.2,
		XSHydrophobe: true, ADHeteroatom: true,
	},
	Magnesium: {
		Name: "Magnesium", ShortName: "Mg", AtomicNum: 12,
		ADRadius: 0.650, ADDepth: 0.875, ADSolvation: -0.001100,
		ADVolume: 1.5600, CovalentRadius: 1.30, XSRadius: 1.2,
		XSDonor: true, ADHeteroatom: true,
	},
	Manganese: {
		Name: "Manganese", ShortName: "Mn", AtomicNum: 25,
		ADRadius: 0.650, ADDepth: 0.875, ADSolvation: -0.001100,
		ADVolume: 2.1400, CovalentRadius: 1.39, XSRadius: 1.2,
		XSDonor: true, ADHeteroatom: true,
	},
	Zinc: {
		Name: "Zinc", ShortName: "Zn", AtomicNum: 30,
		ADRadius: 0.740, ADDepth: 0.550, ADSolvation: -0.001100,
		ADVolume: 1.7000, CovalentRadius: 1.31, XSRadius: 1.2,
		XSDonor: true, ADHeteroatom: true,
	},
	Calcium: {
		Name: "Calcium", ShortName: "Ca", AtomicNum: 20,
		ADRadius: 0.990, ADDepth: 0.550, ADSolvation: -0.001100,
		ADVolume: 2.7700, CovalentRadius: 1.74, XSRadius: 1.2,
		XSDonor: true, ADHeteroatom: true,
	},
	Iron: {
		Name: "Iron", ShortName: "Fe", AtomicNum: 26,
		ADRadius: 0.650, ADDepth: 0.010, ADSolvation: -0.001100,
		ADVolume: 1.8400, CovalentRadius: 1.25, XSRadius: 1.2,
		XSDonor: true, ADHeteroatom: true,
	},
	GenericMetal: {
		Name: "GenericMetal", ShortName: "M", AtomicNum: 0,
		ADRadius: 1.200, ADDepth: 0.000, ADSolvation: -0.001100,
		ADVolume: 22.4493, CovalentRadius: 1.75, XSRadius: 1.2,
		XSDonor: true, ADHeteroatom: true,
	},
	Boron: {
		Name: "Boron", ShortName: "B", AtomicNum: 5,
		ADRadius: 2.040, ADDepth: 0.180, ADSolvation: -0.001100,
		ADVolume: 12.0520, CovalentRadius: 0.90, XSRadius: 2.04,
		XSHydrophobe: true, ADHeteroatom: true,
	},
}

// DefaultTable returns a copy of the built-in constant table. Useful as
// a starting point for WithTable specializations.
func DefaultTable() [NumTypes]Info { return defaultTable }
