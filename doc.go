// Package aoc2024 solves 2D grid puzzles with a reusable grid container and
// a direction-aware A* search.
//
// Packages:
//
//   - grid:    generic 2D container, positions, headings, region flood fill.
//   - search:  A* over grid cells or (cell, heading) states, with a
//     turn-weighted cost regime and enumeration of every tied optimal path.
//   - skips:   counting shortcuts along a single optimal path.
//   - puzzles: input parsing and per-day solvers built on the above.
//
// The cmd/gridsolve command runs one solver on a file or stdin:
//
//	go run ./cmd/gridsolve -day 16 -input day16.txt
//
// The library packages never log and report failures through sentinel
// errors checked with errors.Is. Logging (logrus) lives in puzzles and the
// command.
package aoc2024
