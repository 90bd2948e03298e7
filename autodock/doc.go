// Package autodock implements the 28-category force-field atom typer
// derived from AutoDock4 / XS scoring conventions, plus its 26-slot
// feature-vector decomposition.
//
// What:
//
//   - Typer — classifies one atom into one of 28 mutually exclusive
//     categories (Hydrogen ... Boron) and returns a physical radius.
//   - Info — the immutable per-category constant record (AutoDock radius,
//     well depth, solvation, volume, covalent radius, XS radius, and the
//     hydrophobe / donor / acceptor / heteroatom flags).
//   - VectorTyper — decomposes the categorical result into a 26-slot
//     numeric vector: 17 one-hot element slots, four continuous slots
//     (depth, solvation, volume, radius), three boolean role slots, a
//     heteroatom boolean, and the atom's partial charge.
//
// Why:
//
//   - Grid-based scoring networks want either a channel index per atom
//     or a dense per-atom feature vector; both come from the same
//     constant table so the two encodings agree.
//
// Classification policy:
//
//   - Carbon splits aliphatic/aromatic on the perceived aromaticity flag
//     (or sp2 ring membership) and hydrophobe/non-hydrophobe on whether
//     any heteroatom is attached.
//   - Nitrogen, oxygen and sulfur donor/acceptor roles derive from
//     attached-hydrogen counts, heavy degree and formal charge; see the
//     Typer.Type documentation for the exact rule.
//   - Any atomic number outside the enumerated set routes to the
//     GenericMetal catch-all. Type is total and never fails.
//
// Concurrency: a Typer or VectorTyper is immutable after construction
// and safe for unrestricted concurrent use.
//
// Complexity: classification is O(1) per atom.
package autodock
