package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilHeightmap indicates that a nil *heightmap.Heightmap was passed.
	ErrNilHeightmap = errors.New("dijkstra: heightmap is nil")

	// ErrTargetNotFound indicates that the search origin is outside the grid.
	ErrTargetNotFound = errors.New("dijkstra: origin position not found in heightmap")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreached is reported as the previous distance to OnRelax hooks the first
// time a cell is reached.
const Unreached uint32 = math.MaxUint32

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, return the Steps map; otherwise it is nil.
// MaxDistance – cells whose distance would exceed this cap are not recorded.
//
//	Default is Unreached (no cap).
//
// OnRelax     – called for every accepted relaxation with the cell, its
//
//	previous tentative distance (Unreached if none) and the new one.
type Options struct {
	ReturnPath  bool
	MaxDistance uint32
	OnRelax     func(c heightmap.Cell, from, to uint32)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the Steps map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed max are left out of the result.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		if uint64(max) < uint64(Unreached) {
			o.MaxDistance = uint32(max)
		}
	}
}

// WithOnRelax registers a hook invoked on every accepted relaxation.
func WithOnRelax(fn func(c heightmap.Cell, from, to uint32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with no path output, no distance cap and a
// no-op relaxation hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: Unreached,
		OnRelax:     func(heightmap.Cell, uint32, uint32) {},
	}
}
