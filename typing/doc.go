// Package typing declares the abstract typer and mapper contracts and the
// generic composition that chains them.
//
// What:
//
//   - IndexTyper  — reduces one atom to (category id, radius).
//   - VectorTyper — fills a fixed-length feature vector, returns radius.
//   - Mapper      — pure integer remapping over a typer's category space.
//   - MappedTyper — generic Mapper×IndexTyper composite; the only
//     supported way to chain typing and remapping.
//
// Why:
//
//   - Downstream grid generators consume these contracts only; any typer
//     can be combined with any mapper without per-combination code.
//
// Contracts:
//
//   - IndexTyper.Type is total: every atom maps to some category in
//     [0, NumTypes()); it never fails at runtime.
//   - Mapper.NumTypes() == 0 means "no mapping / pass-through": callers
//     keep using the origin category space unchanged.
//   - A mapper may return Unmapped (-1) for origin ids it does not cover.
//
// Concurrency:
//
//   - All implementations in this module are immutable after
//     construction and safe for unrestricted concurrent use.
//
// Complexity: classification and remapping are O(1) per atom.
package typing
