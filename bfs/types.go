// Package bfs provides tunable options and error definitions
// for breadth‐first search over a heightmap.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCellNotFound is returned when the origin lies outside the grid.
	ErrStartCellNotFound = errors.New("bfs: start cell not found")

	// ErrHeightmapNil is returned if a nil heightmap pointer is passed.
	ErrHeightmapNil = errors.New("bfs: heightmap is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c heightmap.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(heightmap.Cell, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c heightmap.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: distance (in steps) of every reached cell from the origin.
//   - Parent: the cell each reached cell was discovered from.
type Result struct {
	Order  []heightmap.Cell
	Depth  heightmap.Distances
	Parent heightmap.Steps
}
