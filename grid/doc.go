// Package grid provides a generic, bounded 2D container used by the grid
// puzzles and by the search engine in package search.
//
// What:
//
//   - Grid[T] stores cells row-major as [][]T; rows are appended in order.
//   - Get is bounds-checked and never panics; Set reports ErrIndexOutOfRange.
//   - Cells yields a lazy, restartable row-major traversal (iter.Seq).
//   - OrthogonalNeighbors lists the up-to-4 in-bounds neighbors (N, E, S, W).
//   - Direction models the four headings plus a None sentinel for
//     heading-agnostic movement, with TurnLeft/TurnRight and Apply.
//   - Regions groups orthogonally connected cells sharing a value.
//
// Conventions:
//
//   - Row and column indices are zero-based; Position{Row, Col}.
//   - ColCount is the length of the first row. Ragged grids are a caller error
//     and are not validated.
//   - A grid is read-only while a search borrows it; mutate only between runs.
//
// Complexity:
//
//   - Get, Set, InBounds:      O(1).
//   - Cells:                   O(W×H) over a full traversal, O(1) memory.
//   - OrthogonalNeighbors:     O(1).
//   - Regions:                 O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrIndexOutOfRange: Set was called outside the allocated extent.
package grid
