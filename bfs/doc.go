// Package bfs provides a breadth-first search over a heightmap, returning
// hop-count distances, parent links and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (steps) from an origin cell.
//   - DistancesTo walks reverse climbing edges from a destination;
//     DistancesFrom walks forward edges from a source.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from cell → distance from the origin
//   - Parent: map from cell → the cell it was discovered from
//   - Supports functional hooks: OnVisit (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	Every legal step costs one hop, so a FIFO queue settles cells in the same
//	order a uniform-weight Dijkstra would. The package doubles as a
//	cross-check for the dijkstra package and as a selectable algorithm.
//
// Determinism
//
//	heightmap.Neighbors lists neighbours in N, E, S, W order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N)   (each cell and each of its ≤4 edges seen at most once)
//   - Memory: O(N)   (queue, Depth, Parent, visited set)
//
// Usage
//
//	res, err := bfs.DistancesTo(hm, end,
//	    bfs.WithMaxDepth(50),
//	    bfs.WithOnVisit(func(c heightmap.Cell, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrHeightmapNil        if the heightmap pointer is nil.
//   - ErrStartCellNotFound   if the origin lies outside the grid.
//   - ErrOptionViolation     if an invalid Option was supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
