package heightmap_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/heightmap"
)

var sample = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

func mustNew(t *testing.T, rows []string) *heightmap.Heightmap {
	t.Helper()
	hm, err := heightmap.New(rows)
	if err != nil {
		t.Fatalf("New(%v) error: %v", rows, err)
	}
	return hm
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and malformed inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", []string{}, heightmap.ErrEmptyGrid},
		{"EmptyCols", []string{""}, heightmap.ErrEmptyGrid},
		{"NonRectangular", []string{"abc", "ab"}, heightmap.ErrNonRectangular},
		{"TrailingEmptyRow", []string{"abc", ""}, heightmap.ErrNonRectangular},
		{"UpperCase", []string{"abC"}, heightmap.ErrInvalidSymbol},
		{"Digit", []string{"a1"}, heightmap.ErrInvalidSymbol},
		{"TwoStarts", []string{"Sa", "aS"}, heightmap.ErrDuplicateMarker},
		{"TwoEnds", []string{"EE"}, heightmap.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heightmap.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestNew_Dimensions(t *testing.T) {
	hm := mustNew(t, sample)
	if hm.Width() != 8 || hm.Height() != 5 || hm.Len() != 40 {
		t.Errorf("dimensions = %dx%d (%d cells); want 8x5 (40 cells)", hm.Width(), hm.Height(), hm.Len())
	}
	if got := len(hm.Cells()); got != 40 {
		t.Errorf("len(Cells()) = %d; want 40", got)
	}
}

func TestMarkers(t *testing.T) {
	hm := mustNew(t, sample)
	start, ok := hm.Start()
	if !ok || start != (heightmap.Position{X: 0, Y: 0}) {
		t.Errorf("Start() = %v, %v; want (0,0), true", start, ok)
	}
	end, ok := hm.End()
	if !ok || end != (heightmap.Position{X: 5, Y: 2}) {
		t.Errorf("End() = %v, %v; want (5,2), true", end, ok)
	}

	noMarkers := mustNew(t, []string{"ab"})
	if _, ok := noMarkers.Start(); ok {
		t.Error("Start() reported a marker on a grid without S")
	}
	if _, ok := noMarkers.End(); ok {
		t.Error("End() reported a marker on a grid without E")
	}
}

func TestElevationOf(t *testing.T) {
	cases := map[rune]heightmap.Elevation{
		'a': 0, 'b': 1, 'm': 12, 'z': 25,
		'S': heightmap.Lowest, 'E': heightmap.Highest,
	}
	for r, want := range cases {
		got, err := heightmap.ElevationOf(r)
		if err != nil || got != want {
			t.Errorf("ElevationOf(%q) = %d, %v; want %d", r, got, err, want)
		}
	}
	if _, err := heightmap.ElevationOf('#'); !errors.Is(err, heightmap.ErrInvalidSymbol) {
		t.Errorf("ElevationOf('#') error = %v; want ErrInvalidSymbol", err)
	}
	if got := heightmap.Elevation(2).Symbol(); got != 'c' {
		t.Errorf("Symbol() = %q; want 'c'", got)
	}
}

func TestParseAndRead(t *testing.T) {
	text := strings.Join(sample, "\r\n") + "\r\n"
	parsed, err := heightmap.Parse(text)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	read, err := heightmap.Read(strings.NewReader(strings.Join(sample, "\n") + "\n\n"))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !reflect.DeepEqual(parsed.Cells(), read.Cells()) {
		t.Error("Parse and Read disagree on the same grid")
	}
	if _, err := heightmap.Parse("\n"); !errors.Is(err, heightmap.ErrEmptyGrid) {
		t.Errorf("Parse(blank) error = %v; want ErrEmptyGrid", err)
	}
}

//----------------------------------------------------------------------------//
// Lookup and adjacency
//----------------------------------------------------------------------------//

// TestCellAt checks bounds handling on the 8×5 sample.
func TestCellAt(t *testing.T) {
	hm := mustNew(t, sample)

	c, ok := hm.CellAt(heightmap.Position{X: 3, Y: 0})
	if !ok || c.Elevation != 'q'-'a' {
		t.Errorf("CellAt(3,0) = %+v, %v; want elevation of 'q'", c, ok)
	}
	invalid := []heightmap.Position{{X: -1, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 5}, {X: 2, Y: -1}}
	for _, p := range invalid {
		if _, ok := hm.CellAt(p); ok {
			t.Errorf("CellAt(%v) reported a cell outside the grid", p)
		}
		if hm.InBounds(p) {
			t.Errorf("InBounds(%v) = true; want false", p)
		}
	}
}

func TestReachableFrom(t *testing.T) {
	// c at the centre; neighbours a (N), d (E), b (S), z (W).
	hm := mustNew(t, []string{
		"xay",
		"zcd",
		"xbx",
	})
	centre, _ := hm.CellAt(heightmap.Position{X: 1, Y: 1})
	got := positions(hm.ReachableFrom(centre))
	// a+1 < c, so only d, b and z can step into c.
	want := []heightmap.Position{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReachableFrom(c) = %v; want %v", got, want)
	}

	flat := mustNew(t, []string{"aa", "aa"})
	corner, _ := flat.CellAt(heightmap.Position{X: 0, Y: 0})
	if n := len(flat.ReachableFrom(corner)); n != 2 {
		t.Errorf("corner has %d reverse neighbours; want 2 (no wraparound)", n)
	}
}

// TestReachableFrom_ClimbingRule checks on every cell of the sample that each
// reverse neighbour satisfies the forward rule.
func TestReachableFrom_ClimbingRule(t *testing.T) {
	hm := mustNew(t, sample)
	for _, a := range hm.Cells() {
		for _, b := range hm.ReachableFrom(a) {
			if a.Elevation > b.Elevation+1 {
				t.Errorf("%v listed as able to step into %v", b, a)
			}
			dx, dy := a.Pos.X-b.Pos.X, a.Pos.Y-b.Pos.Y
			if dx*dx+dy*dy != 1 {
				t.Errorf("%v is not orthogonally adjacent to %v", b, a)
			}
		}
	}
}

func TestNeighbors_Directions(t *testing.T) {
	hm := mustNew(t, []string{
		"xay",
		"zcd",
		"xbx",
	})
	centre, _ := hm.CellAt(heightmap.Position{X: 1, Y: 1})

	if !reflect.DeepEqual(hm.Neighbors(centre, heightmap.Reverse), hm.ReachableFrom(centre)) {
		t.Error("Neighbors(Reverse) differs from ReachableFrom")
	}
	// From c you may step into a, d and b but not z.
	got := positions(hm.Neighbors(centre, heightmap.Forward))
	want := []heightmap.Position{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(Forward) = %v; want %v", got, want)
	}

	// Edge symmetry: b ∈ Forward(a) ⇔ a ∈ Reverse(b).
	hm = mustNew(t, sample)
	for _, a := range hm.Cells() {
		for _, b := range hm.Neighbors(a, heightmap.Forward) {
			if !contains(hm.ReachableFrom(b), a) {
				t.Errorf("forward edge %v→%v missing from reverse adjacency", a.Pos, b.Pos)
			}
		}
	}
}

func TestLowest(t *testing.T) {
	hm := mustNew(t, []string{
		"Sb",
		"aE",
	})
	want := []heightmap.Position{{X: 0, Y: 0}, {X: 0, Y: 1}}
	if got := hm.Lowest(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lowest() = %v; want %v", got, want)
	}
}

func TestPositionCompare(t *testing.T) {
	a := heightmap.Position{X: 1, Y: 5}
	b := heightmap.Position{X: 2, Y: 0}
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Errorf("Compare ordering broken for %v, %v", a, b)
	}
	if got := a.Add(-1, 2); got != (heightmap.Position{X: 0, Y: 7}) {
		t.Errorf("Add = %v; want (0,7)", got)
	}
}

//----------------------------------------------------------------------------//
// Distances and Steps
//----------------------------------------------------------------------------//

func TestDistancesMinOver(t *testing.T) {
	a := heightmap.Cell{Pos: heightmap.Position{X: 0, Y: 0}}
	b := heightmap.Cell{Pos: heightmap.Position{X: 1, Y: 0}}
	d := heightmap.Distances{a: 7, b: 3}

	if got, ok := d.MinOver([]heightmap.Position{a.Pos, b.Pos}); !ok || got != 3 {
		t.Errorf("MinOver = %d, %v; want 3, true", got, ok)
	}
	if _, ok := d.MinOver([]heightmap.Position{{X: 9, Y: 9}}); ok {
		t.Error("MinOver found a distance for an unreached position")
	}
	if v, ok := d.Of(a); !ok || v != 7 {
		t.Errorf("Of(a) = %d, %v; want 7, true", v, ok)
	}
}

func TestStepsWalk(t *testing.T) {
	a := heightmap.Cell{Pos: heightmap.Position{X: 0, Y: 0}}
	b := heightmap.Cell{Pos: heightmap.Position{X: 1, Y: 0}}
	c := heightmap.Cell{Pos: heightmap.Position{X: 2, Y: 0}}
	s := heightmap.Steps{a: b, b: c}

	if got := s.Walk(a); !reflect.DeepEqual(got, []heightmap.Cell{a, b, c}) {
		t.Errorf("Walk(a) = %v", got)
	}
	if got := s.Walk(c); len(got) != 1 {
		t.Errorf("Walk(c) = %v; want just c", got)
	}
}

func positions(cells []heightmap.Cell) []heightmap.Position {
	out := make([]heightmap.Position, len(cells))
	for i, c := range cells {
		out[i] = c.Pos
	}
	return out
}

func contains(cells []heightmap.Cell, c heightmap.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
