package chem

import "fmt"

// MaxElement is the highest atomic number covered by the element tables.
const MaxElement = 118

// symbols holds the IUPAC element symbols indexed by atomic number.
// Index 0 is the "unknown element" placeholder.
var symbols = [MaxElement + 1]string{
	"X",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// covalentRadii holds single-bond covalent radii in Ångström indexed by
// atomic number (Cordero et al. consensus values). Index 0 is zero.
var covalentRadii = [MaxElement + 1]float64{
	0.00,
	0.31, 0.28, 1.28, 0.96, 0.84, 0.76, 0.71, 0.66, 0.57, 0.58,
	1.66, 1.41, 1.21, 1.11, 1.07, 1.05, 1.02, 1.06, 2.03, 1.76,
	1.70, 1.60, 1.53, 1.39, 1.39, 1.32, 1.26, 1.24, 1.32, 1.22,
	1.22, 1.20, 1.19, 1.20, 1.20, 1.16, 2.20, 1.95, 1.90, 1.75,
	1.64, 1.54, 1.47, 1.46, 1.42, 1.39, 1.45, 1.44, 1.42, 1.39,
	1.39, 1.38, 1.39, 1.40, 2.44, 2.15, 2.07, 2.04, 2.03, 2.01,
	1.99, 1.98, 1.98, 1.96, 1.94, 1.92, 1.92, 1.89, 1.90, 1.87,
	1.87, 1.75, 1.70, 1.62, 1.51, 1.44, 1.41, 1.36, 1.36, 1.32,
	1.45, 1.46, 1.48, 1.40, 1.50, 1.50, 2.60, 2.21, 2.15, 2.06,
	2.00, 1.96, 1.90, 1.87, 1.80, 1.69, 1.68, 1.68, 1.65, 1.67,
	1.73, 1.76, 1.61, 1.57, 1.49, 1.43, 1.41, 1.34, 1.29, 1.28,
	1.21, 1.22, 1.36, 1.43, 1.62, 1.75, 1.65, 1.57,
}

// Symbol returns the element symbol for the given atomic number.
// Out-of-table numbers yield a synthetic "Elem<Z>" label so that name
// lists stay unique. Complexity: O(1).
func Symbol(atomicNum int) string {
	if atomicNum < 0 || atomicNum > MaxElement {
		return fmt.Sprintf("Elem%d", atomicNum)
	}

	return symbols[atomicNum]
}

// CovalentRadius returns the covalent radius in Ångström for the given
// atomic number, or 0 for unknown elements. Complexity: O(1).
func CovalentRadius(atomicNum int) float64 {
	if atomicNum < 0 || atomicNum > MaxElement {
		return 0
	}

	return covalentRadii[atomicNum]
}
