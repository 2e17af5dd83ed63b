package hillclimb

import (
	"strings"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Render draws route over a blank copy of the grid: every step is marked
// with the arrow of the direction it takes (^ > v <), the last position with
// 'E', and every other cell with '.'. Positions outside the grid are ignored.
func Render(hm *heightmap.Heightmap, route []heightmap.Position) string {
	canvas := make([][]byte, hm.Height())
	for y := range canvas {
		canvas[y] = []byte(strings.Repeat(".", hm.Width()))
	}
	for i, p := range route {
		if !hm.InBounds(p) {
			continue
		}
		if i == len(route)-1 {
			canvas[p.Y][p.X] = heightmap.EndSymbol
			continue
		}
		canvas[p.Y][p.X] = arrow(p, route[i+1])
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func arrow(from, to heightmap.Position) byte {
	switch {
	case to.Y < from.Y:
		return '^'
	case to.X > from.X:
		return '>'
	case to.Y > from.Y:
		return 'v'
	case to.X < from.X:
		return '<'
	}
	return '.'
}
