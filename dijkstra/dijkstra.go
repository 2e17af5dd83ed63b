package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// DistancesTo computes, for every cell that can climb to target, the fewest
// steps needed to get there. It searches the reverse graph
// (heightmap.ReachableFrom) starting at target with distance 0.
//
// Returns:
//
//   - dist:  map from cell to hop count; unreachable cells are absent.
//   - steps: with WithReturnPath, steps[c] is the next cell on one shortest
//     route from c to target; nil otherwise.
//   - err:   ErrNilHeightmap or ErrTargetNotFound.
//
// Complexity: O(N log N) time, O(N) space.
func DistancesTo(hm *heightmap.Heightmap, target heightmap.Position, opts ...Option) (heightmap.Distances, heightmap.Steps, error) {
	return search(hm, target, heightmap.Reverse, opts)
}

// DistancesFrom computes the fewest steps from source to every cell it can
// climb to, following forward edges. With WithReturnPath, steps[c] is the
// previous cell on one shortest route from source to c.
func DistancesFrom(hm *heightmap.Heightmap, source heightmap.Position, opts ...Option) (heightmap.Distances, heightmap.Steps, error) {
	return search(hm, source, heightmap.Forward, opts)
}

func search(hm *heightmap.Heightmap, origin heightmap.Position, dir heightmap.Direction, opts []Option) (heightmap.Distances, heightmap.Steps, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if hm == nil {
		return nil, nil, ErrNilHeightmap
	}
	start, ok := hm.CellAt(origin)
	if !ok {
		return nil, nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrTargetNotFound, origin.X, origin.Y, hm.Width(), hm.Height())
	}

	n := hm.Len()
	r := &runner{
		hm:      hm,
		dir:     dir,
		options: cfg,
		dist:    make(heightmap.Distances, n),
		visited: make(map[heightmap.Cell]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.steps = make(heightmap.Steps, n)
	}

	r.init(start)
	r.process()

	return r.dist, r.steps, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	hm      *heightmap.Heightmap // read-only
	dir     heightmap.Direction
	options Options
	dist    heightmap.Distances
	steps   heightmap.Steps // nil unless ReturnPath
	visited map[heightmap.Cell]bool
	pq      nodePQ
}

// init records the origin at distance 0 and seeds the heap with it.
func (r *runner) init(origin heightmap.Cell) {
	// 1) Distance to the origin is zero; every other cell stays absent (Unreached).
	r.dist[origin] = 0

	// 2) Initialize the priority queue and push the origin.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: origin, dist: 0})
}

// process pops the closest unsettled cell until the heap is empty.
// Stale entries (cells already settled at a smaller distance) are skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) If this cell was already settled, skip the stale heap entry.
		if r.visited[item.cell] {
			continue
		}

		// 3) Mark the cell settled. Its distance is now final.
		r.visited[item.cell] = true

		// 4) Relax every neighbour in the search direction.
		r.relax(item.cell, item.dist)
	}
}

// relax tries to improve the distance of every neighbour of u in the search
// direction. Only strictly shorter distances are accepted.
func (r *runner) relax(u heightmap.Cell, d uint32) {
	// 1) Every step costs one; stop once the cap would be exceeded.
	newDist := d + 1
	if newDist > r.options.MaxDistance {
		return
	}

	// 2) For each neighbour, attempt relaxation.
	for _, v := range r.hm.Neighbors(u, r.dir) {
		if r.visited[v] {
			continue
		}
		old, seen := r.dist[v]
		if !seen {
			old = Unreached
		}
		if newDist >= old {
			continue
		}

		// 3) Record the shorter distance, the link and re-push.
		r.dist[v] = newDist
		if r.steps != nil {
			r.steps[v] = u
		}
		r.options.OnRelax(v, old, newDist)
		heap.Push(&r.pq, &nodeItem{cell: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a cell and the distance it was pushed with.
type nodeItem struct {
	cell heightmap.Cell
	dist uint32
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
