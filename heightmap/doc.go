// Package heightmap treats a rectangular grid of elevation letters as a
// directed graph, where a step between two orthogonal neighbours is legal
// only when it climbs at most one level.
//
// What:
//
//   - Heightmap wraps rows of 'a'..'z' symbols plus the 'S' (start, elevation
//     of 'a') and 'E' (end, elevation of 'z') markers.
//   - CellAt performs bounds-checked lookups; positions outside the grid are
//     reported as absent, never as a panic.
//   - ReachableFrom lists the neighbours that could step into a cell. This is
//     the reverse adjacency used to search backwards from a destination.
//   - Neighbors generates adjacency for either traversal Direction without
//     touching the grid.
//
// Why:
//
//	The climbing rule is asymmetric: A→B is legal iff B ≤ A+1. Searching the
//	reverse graph from the destination yields the distance from every cell to
//	that destination in one pass, instead of one search per candidate start.
//	ReachableFrom applies the same inequality from the neighbour's side
//	(neighbour+1 ≥ cell), which is why the operands are not swapped.
//
// Complexity:
//
//   - New:            O(W×H) time and memory.
//   - CellAt:         O(1).
//   - ReachableFrom:  O(1) (at most four neighbours).
//
// Errors:
//
//   - ErrEmptyGrid:        no rows, or an empty row.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrInvalidSymbol:    a symbol outside a-z, S, E.
//   - ErrDuplicateMarker:  more than one S or E.
//
// A Heightmap is immutable after construction and may be shared by any number
// of concurrent readers.
package heightmap
