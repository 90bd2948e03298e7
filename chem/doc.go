// Package chem declares the atom attribute contract consumed by every
// typer in this module, together with a plain value implementation and
// the element symbol / covalent-radius tables.
//
// What:
//
//   - Atom — read-only view of one atom's perceived chemical attributes
//     (atomic number, aromaticity, ring membership, hybridization,
//     hydrogen counts, degrees, charges, element radius).
//   - AtomData — a concrete Atom backed by plain fields, for tests,
//     tooling, and attribute sources that are not themselves Go objects.
//   - Symbol / CovalentRadius — element lookup tables for Z = 0..118.
//
// Why:
//
//   - Typers must not perceive chemistry themselves; they only read
//     attributes an external molecular-structure library has already
//     perceived. Atom is that boundary.
//
// Concurrency:
//
//   - Atom implementations are read-only from the typers' point of view;
//     nothing in this module mutates an atom. AtomData is a value type
//     and safe to copy.
//
// Complexity: all lookups are O(1).
package chem
