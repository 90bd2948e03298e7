// Package mapper provides the concrete type-remapping strategies that
// collapse a typer's category space onto a smaller vocabulary.
//
// What:
//
//   - Identity — the pass-through default (NumTypes() == 0).
//   - Subset — explicit id-level remapping: direct injective mode
//     (position = destination, value = origin) or grouped surjective
//     mode (many origins fold onto one destination), each with an
//     optional catch-all destination appended after the explicit ones.
//   - File — name-driven grouping parsed from a text specification, one
//     destination group per line, origin type names separated by
//     whitespace; line order defines destination ids.
//
// Why:
//
//   - Models routinely merge categories (all halogens as one channel) or
//     restrict to a biologically relevant subset; doing it as a pure
//     id→id table keeps the classification hot path allocation-free.
//
// Errors (construction time only; MapType never fails):
//
//   - ErrEmptySpec      — the mapping specification has no groups.
//   - ErrEmptyGroup     — a blank line in the specification.
//   - ErrUnknownName    — a name that resolves to no origin type.
//   - ErrDuplicateOrigin — an origin id or name placed in two groups.
//
// Concurrency: all mappers are immutable after construction and safe
// for unrestricted concurrent use.
//
// Complexity: MapType is O(1); construction is linear in the
// specification size.
package mapper
