package bfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  heightmap.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	hm      *heightmap.Heightmap
	dir     heightmap.Direction
	opts    Options
	queue   []queueItem
	visited map[heightmap.Cell]bool
	res     *Result
}

// DistancesTo runs breadth-first search over reverse edges from target, so
// Depth[c] is the fewest steps from c to target and Parent[c] is the next hop.
// Returns ErrHeightmapNil or ErrStartCellNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func DistancesTo(hm *heightmap.Heightmap, target heightmap.Position, opts ...Option) (*Result, error) {
	return run(hm, target, heightmap.Reverse, opts)
}

// DistancesFrom runs breadth-first search over forward edges from source.
func DistancesFrom(hm *heightmap.Heightmap, source heightmap.Position, opts ...Option) (*Result, error) {
	return run(hm, source, heightmap.Forward, opts)
}

func run(hm *heightmap.Heightmap, origin heightmap.Position, dir heightmap.Direction, opts []Option) (*Result, error) {
	if hm == nil {
		return nil, ErrHeightmapNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := hm.CellAt(origin)
	if !ok {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartCellNotFound, origin.X, origin.Y)
	}

	n := hm.Len()
	w := &walker{
		hm:      hm,
		dir:     dir,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[heightmap.Cell]bool, n),
		res: &Result{
			Order:  make([]heightmap.Cell, 0, n),
			Depth:  make(heightmap.Distances, n),
			Parent: make(heightmap.Steps, n),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(c heightmap.Cell, d int, parent *heightmap.Cell) {
	w.visited[c] = true
	w.res.Depth[c] = uint32(d)
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// 1) Pop the oldest item; cells come out in depth order.
		item := w.dequeue()

		// 2) Record the visit and run the hook.
		if err := w.visit(item); err != nil {
			return err
		}

		// 3) Discover the next layer.
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at (%d,%d): %w", item.cell.Pos.X, item.cell.Pos.Y, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	// 1) Respect MaxDepth (0 means unlimited).
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	// 2) Enqueue each neighbour not yet seen; it is marked on enqueue, never twice.
	for _, nbr := range w.hm.Neighbors(item.cell, w.dir) {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &item.cell)
		}
	}
}
