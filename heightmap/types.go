package heightmap

import (
	"cmp"
	"errors"
)

// Sentinel errors for heightmap construction.
var (
	// ErrEmptyGrid indicates the input has no rows or an empty row.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidSymbol indicates a character outside a-z, S and E.
	ErrInvalidSymbol = errors.New("heightmap: invalid elevation symbol")
	// ErrDuplicateMarker indicates more than one start or end marker.
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
)

// Marker symbols recognised in the input.
const (
	StartSymbol = 'S'
	EndSymbol   = 'E'
)

// Elevation is the height of a cell, 0 ('a') through 25 ('z').
type Elevation uint8

const (
	// Lowest is the elevation of 'a' and of the start marker.
	Lowest Elevation = 0
	// Highest is the elevation of 'z' and of the end marker.
	Highest Elevation = 'z' - 'a'
)

// Direction selects which way the climbing rule is applied when generating
// neighbours.
type Direction int

const (
	// Reverse yields the cells that could step into the given cell.
	Reverse Direction = iota
	// Forward yields the cells the given cell could step into.
	Forward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "reverse"
}

// Position is an (X, Y) grid coordinate; X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Compare orders positions by X, then by Y.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

// Cell is a single grid cell with its coordinates and elevation.
type Cell struct {
	Pos       Position
	Elevation Elevation
}

// Distances maps every reached cell to its hop count from the search origin.
// A missing key means the cell was not reached.
type Distances map[Cell]uint32

// Of returns the distance recorded for c.
func (d Distances) Of(c Cell) (uint32, bool) {
	v, ok := d[c]
	return v, ok
}

// MinOver returns the smallest distance among the cells at the given
// positions. ok is false when none of them was reached.
func (d Distances) MinOver(positions []Position) (best uint32, ok bool) {
	want := make(map[Position]struct{}, len(positions))
	for _, p := range positions {
		want[p] = struct{}{}
	}
	for c, v := range d {
		if _, hit := want[c.Pos]; !hit {
			continue
		}
		if !ok || v < best {
			best, ok = v, true
		}
	}
	return best, ok
}

// Steps links a cell to the adjacent cell it was relaxed from during a search.
// For a reverse search that is the next hop toward the destination; for a
// forward search it is the previous hop from the source.
type Steps map[Cell]Cell

// Walk follows links starting at from and returns every visited cell,
// from included, until a cell without a link is met.
func (s Steps) Walk(from Cell) []Cell {
	route := []Cell{from}
	for cur := from; ; {
		next, ok := s[cur]
		if !ok {
			return route
		}
		route = append(route, next)
		cur = next
	}
}
