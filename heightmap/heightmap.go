package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Heightmap is an immutable rectangular grid of cells.
// cells[y][x] holds the cell at Position{X: x, Y: y}.
type Heightmap struct {
	width, height int
	cells         [][]Cell
	start, end    Position
	hasStart      bool
	hasEnd        bool
}

// offsets lists the orthogonal neighbours in N, E, S, W order.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New builds a Heightmap from rows of elevation symbols.
// Returns ErrEmptyGrid if rows is empty or a row has no symbols,
// ErrNonRectangular if any row length differs, ErrInvalidSymbol for a symbol
// outside a-z, S, E and ErrDuplicateMarker if S or E occurs twice.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Heightmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	hm := &Heightmap{
		width:  w,
		height: h,
		cells:  make([][]Cell, h),
	}
	for y, line := range rows {
		symbols := []rune(line)
		if len(symbols) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(symbols), w)
		}
		row := make([]Cell, w)
		for x, r := range symbols {
			pos := Position{X: x, Y: y}
			elev, err := ElevationOf(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			if err := hm.mark(r, pos); err != nil {
				return nil, err
			}
			row[x] = Cell{Pos: pos, Elevation: elev}
		}
		hm.cells[y] = row
	}

	return hm, nil
}

// mark records the position of a start or end marker.
func (hm *Heightmap) mark(r rune, pos Position) error {
	switch r {
	case StartSymbol:
		if hm.hasStart {
			return fmt.Errorf("%w: %q at (%d,%d) and (%d,%d)", ErrDuplicateMarker, r, hm.start.X, hm.start.Y, pos.X, pos.Y)
		}
		hm.start, hm.hasStart = pos, true
	case EndSymbol:
		if hm.hasEnd {
			return fmt.Errorf("%w: %q at (%d,%d) and (%d,%d)", ErrDuplicateMarker, r, hm.end.X, hm.end.Y, pos.X, pos.Y)
		}
		hm.end, hm.hasEnd = pos, true
	}
	return nil
}

// Parse builds a Heightmap from newline-separated rows.
// A trailing newline and CRLF line endings are accepted.
func Parse(text string) (*Heightmap, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return New(strings.Split(text, "\n"))
}

// Read builds a Heightmap from r, one row per line.
// Trailing blank lines are ignored.
func Read(r io.Reader) (*Heightmap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: reading input: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return New(rows)
}

// Width returns the number of columns.
func (hm *Heightmap) Width() int { return hm.width }

// Height returns the number of rows.
func (hm *Heightmap) Height() int { return hm.height }

// Len returns the number of cells.
func (hm *Heightmap) Len() int { return hm.width * hm.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (hm *Heightmap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < hm.width && p.Y >= 0 && p.Y < hm.height
}

// CellAt returns the cell at p. ok is false when p is outside the grid.
// Complexity: O(1).
func (hm *Heightmap) CellAt(p Position) (c Cell, ok bool) {
	if !hm.InBounds(p) {
		return Cell{}, false
	}
	return hm.cells[p.Y][p.X], true
}

// Start returns the position of the 'S' marker, if any.
func (hm *Heightmap) Start() (Position, bool) { return hm.start, hm.hasStart }

// End returns the position of the 'E' marker, if any.
func (hm *Heightmap) End() (Position, bool) { return hm.end, hm.hasEnd }

// Lowest returns the positions of every cell at elevation 'a', the start
// marker included, in row-major order.
func (hm *Heightmap) Lowest() []Position {
	var out []Position
	for _, row := range hm.cells {
		for _, c := range row {
			if c.Elevation == Lowest {
				out = append(out, c.Pos)
			}
		}
	}
	return out
}

// Cells returns a row-major copy of every cell.
func (hm *Heightmap) Cells() []Cell {
	out := make([]Cell, 0, hm.Len())
	for _, row := range hm.cells {
		out = append(out, row...)
	}
	return out
}

// ReachableFrom returns the orthogonal neighbours of c that could step into c
// under the climbing rule: a neighbour n qualifies when n.Elevation+1 >= c.Elevation.
// Neighbours are listed in N, E, S, W order.
func (hm *Heightmap) ReachableFrom(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n, ok := hm.CellAt(c.Pos.Add(d[0], d[1]))
		if !ok {
			continue
		}
		if int(n.Elevation)+1 >= int(c.Elevation) {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors returns the adjacency of c for the given traversal direction.
// Reverse is equivalent to ReachableFrom; Forward lists the neighbours n that c
// may step into (n.Elevation <= c.Elevation+1).
func (hm *Heightmap) Neighbors(c Cell, dir Direction) []Cell {
	if dir == Reverse {
		return hm.ReachableFrom(c)
	}
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n, ok := hm.CellAt(c.Pos.Add(d[0], d[1]))
		if !ok {
			continue
		}
		if int(n.Elevation) <= int(c.Elevation)+1 {
			out = append(out, n)
		}
	}
	return out
}
