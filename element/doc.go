// Package element implements the simplest index typer: category id is
// the atomic number itself.
//
// What:
//
//   - Typer — NumTypes() equals the configured maximum element count
//     (default 84). Atoms with atomic number ≥ the maximum (or unknown)
//     share catch-all category 0; the radius always comes from the
//     attribute source's element radius.
//
// Why:
//
//   - The reference encoding for "no classification beyond element
//     identity". There are many elements, so the output is usually run
//     through a mapper that folds them onto a smaller vocabulary.
//
// Concurrency: immutable after New; safe for concurrent use.
//
// Complexity: O(1) per atom.
package element
