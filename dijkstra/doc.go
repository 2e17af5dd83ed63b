// Package dijkstra provides Dijkstra's shortest-path algorithm specialised to
// heightmaps, where every legal step costs exactly one hop.
//
// Overview:
//
//   - DistancesTo searches the reverse climbing graph from a destination and
//     returns the hop count from every cell that can reach it. One call answers
//     "how far is E from here" for all candidate starts at once.
//   - DistancesFrom runs the same search over forward edges from a source.
//   - It relies on a min-heap (priority queue) to always expand the next-closest
//     cell, using a “lazy decrease-key” strategy: improved distances are pushed
//     as new entries and stale entries are skipped when popped.
//
// Key features:
//
//   - Functional options keep the call signature stable.
//   - WithReturnPath: also returns a heightmap.Steps map so any route can be
//     rebuilt. For DistancesTo, Steps[c] is the next hop from c toward the target.
//   - WithMaxDistance: leaves cells farther than the cap out of the result.
//   - WithOnRelax: observes every accepted relaxation (old and new distance).
//
// Result contract:
//
//   - The origin's entry is always 0.
//   - Cells absent from the result are unreachable (or beyond MaxDistance).
//   - Ties in the heap are processed in any order; only strictly improving
//     relaxations are accepted, so final distances do not depend on tie order.
//   - The search always runs to completion; there is no early exit and no
//     cancellation.
//
// Performance and complexity (N = W×H cells, at most 4N edges):
//
//   - Time:  O(N log N)
//   - Space: O(N) for distances, visited flags, optional steps and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilHeightmap:   the heightmap pointer is nil.
//   - ErrTargetNotFound: the origin position lies outside the grid. This is a
//     caller bug; the command line treats it as fatal.
//   - ErrBadMaxDistance: raised (via panic) by WithMaxDistance for negative caps.
//
// Thread safety:
//
//	Each call owns its heap, distance map and visited set. A Heightmap is
//	read-only, so any number of searches may run on it concurrently.
package dijkstra
