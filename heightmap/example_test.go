package heightmap_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ExampleHeightmap_ReachableFrom lists the cells that can climb into the
// 'c' at the centre of a 3×3 grid. The 'a' above it is two levels lower and
// cannot.
func ExampleHeightmap_ReachableFrom() {
	hm, err := heightmap.Parse("xay\nzcd\nxbx\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	centre, _ := hm.CellAt(heightmap.Position{X: 1, Y: 1})
	for _, n := range hm.ReachableFrom(centre) {
		fmt.Printf("(%d,%d)=%c\n", n.Pos.X, n.Pos.Y, n.Elevation.Symbol())
	}
	// Output:
	// (2,1)=d
	// (1,2)=b
	// (0,1)=z
}

// ExampleNew shows the marker lookups on the standard puzzle sample.
func ExampleNew() {
	hm, err := heightmap.New([]string{
		"Sabqponm",
		"abcryxxl",
		"accszExk",
		"acctuvwj",
		"abdefghi",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := hm.Start()
	end, _ := hm.End()
	fmt.Printf("%dx%d start=%v end=%v lowest=%d\n", hm.Width(), hm.Height(), start, end, len(hm.Lowest()))
	// Output: 8x5 start={0 0} end={5 2} lowest=6
}
