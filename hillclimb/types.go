// Package hillclimb answers the two hill-climbing questions for a heightmap:
// the fewest steps from the start marker to the end marker, and the fewest
// steps from any lowest cell to the end marker. Both come from a single
// reverse search rooted at the end marker.
package hillclimb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for solving.
var (
	// ErrNoStart indicates the heightmap has no 'S' marker.
	ErrNoStart = errors.New("hillclimb: heightmap has no start marker")
	// ErrNoEnd indicates the heightmap has no 'E' marker.
	ErrNoEnd = errors.New("hillclimb: heightmap has no end marker")
	// ErrUnreachable indicates the end cannot be reached from the start.
	ErrUnreachable = errors.New("hillclimb: end is unreachable from start")
	// ErrNoReachableStart indicates no lowest cell can reach the end.
	ErrNoReachableStart = errors.New("hillclimb: no lowest cell reaches the end")
	// ErrUnknownAlgorithm indicates an unsupported search algorithm name.
	ErrUnknownAlgorithm = errors.New("hillclimb: unknown algorithm")
)

// Algorithm names a distance solver.
type Algorithm string

const (
	// Dijkstra uses the heap-based search (default).
	Dijkstra Algorithm = "dijkstra"
	// BFS uses the FIFO layered search.
	BFS Algorithm = "bfs"
)

// ParseAlgorithm validates an algorithm name, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case Dijkstra, BFS:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Answer holds both puzzle results and the route behind the first one.
type Answer struct {
	// FromStart is the fewest steps from 'S' to 'E'.
	FromStart uint32
	// FromLowest is the fewest steps from any elevation-'a' cell to 'E'.
	FromLowest uint32
	// Route lists the positions from 'S' to 'E', both included.
	Route []heightmap.Position
}
