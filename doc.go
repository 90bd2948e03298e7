// Package atomtype reduces chemical atoms to fixed numeric representations
// for neural-network input: a discrete category index plus a physical
// radius, or a dense feature vector.
//
// 🚀 What is atomtype?
//
//	A small, deterministic library that brings together:
//		• chem/     — the atom attribute contract every typer consumes
//		• typing/   — IndexTyper, VectorTyper and Mapper abstractions,
//		              plus generic mapper×typer composition
//		• autodock/ — 28-category AutoDock/XS force-field typer and its
//		              26-slot feature-vector decomposition
//		• element/  — plain element-number typer with a catch-all slot
//		• mapper/   — identity, subset (injective & grouped) and
//		              file-driven type remapping
//
// ✨ Why choose atomtype?
//
//   - Deterministic – every typer and mapper is an immutable table after
//     construction; classification is a pure function of the atom
//   - Total – classification never fails at runtime; all fallible work
//     happens once, at construction
//   - Composable – any Mapper wraps any IndexTyper via typing.MappedTyper
//     without per-combination code
//
// Data flows one atom at a time: attribute source → typer (or vector
// typer) → optional mapper → category id (or vector) + radius, consumed
// by a downstream grid generator that labels its tensor channels with
// TypeNames().
//
// The cmd/atomtype CLI prints typer vocabularies and validates mapping
// files against them.
package atomtype
