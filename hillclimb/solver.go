package hillclimb

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/dijkstra"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Solver runs the distance search with the configured algorithm.
// A Solver holds no per-query state and may be used concurrently.
type Solver struct {
	algorithm Algorithm
	log       zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithAlgorithm selects the search algorithm. Default: Dijkstra.
func WithAlgorithm(a Algorithm) Option {
	return func(s *Solver) {
		s.algorithm = a
	}
}

// WithLogger sets the logger used for search diagnostics. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) {
		s.log = l
	}
}

// NewSolver builds a Solver. The algorithm name is normalized the way
// ParseAlgorithm does it. Returns ErrUnknownAlgorithm for an unsupported
// algorithm.
func NewSolver(opts ...Option) (*Solver, error) {
	s := &Solver{
		algorithm: Dijkstra,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	a, err := ParseAlgorithm(string(s.algorithm))
	if err != nil {
		return nil, err
	}
	s.algorithm = a
	return s, nil
}

// Algorithm reports the configured algorithm.
func (s *Solver) Algorithm() Algorithm { return s.algorithm }

// DistancesTo returns the reverse distance map rooted at target, together
// with next-hop links toward target.
func (s *Solver) DistancesTo(hm *heightmap.Heightmap, target heightmap.Position) (heightmap.Distances, heightmap.Steps, error) {
	began := time.Now()
	var (
		dist  heightmap.Distances
		steps heightmap.Steps
		err   error
	)
	switch s.algorithm {
	case BFS:
		var res *bfs.Result
		if res, err = bfs.DistancesTo(hm, target); err == nil {
			dist, steps = res.Depth, res.Parent
		}
	default:
		dist, steps, err = dijkstra.DistancesTo(hm, target, dijkstra.WithReturnPath())
	}
	if err != nil {
		return nil, nil, err
	}

	s.log.Debug().
		Str("algorithm", string(s.algorithm)).
		Int("cells", hm.Len()).
		Int("reached", len(dist)).
		Dur("elapsed", time.Since(began)).
		Msg("distance search complete")

	return dist, steps, nil
}

// FewestStepsFromStart returns the fewest steps from 'S' to 'E'.
func (s *Solver) FewestStepsFromStart(hm *heightmap.Heightmap) (uint32, error) {
	end, err := endOf(hm)
	if err != nil {
		return 0, err
	}
	dist, _, err := s.DistancesTo(hm, end)
	if err != nil {
		return 0, err
	}
	n, _, err := fromStart(hm, dist)
	return n, err
}

// FewestStepsFromLowest returns the fewest steps to 'E' from any cell at
// elevation 'a', 'S' included.
func (s *Solver) FewestStepsFromLowest(hm *heightmap.Heightmap) (uint32, error) {
	end, err := endOf(hm)
	if err != nil {
		return 0, err
	}
	dist, _, err := s.DistancesTo(hm, end)
	if err != nil {
		return 0, err
	}
	return fromLowest(hm, dist)
}

// Solve answers both questions from one search and returns the route from
// 'S' to 'E'. Solve needs both answers: when 'S' cannot reach 'E' it fails
// with ErrUnreachable even if some lowest cell can, so callers that only want
// the second answer use FewestStepsFromLowest.
func (s *Solver) Solve(hm *heightmap.Heightmap) (*Answer, error) {
	end, err := endOf(hm)
	if err != nil {
		return nil, err
	}
	dist, steps, err := s.DistancesTo(hm, end)
	if err != nil {
		return nil, err
	}
	n, start, err := fromStart(hm, dist)
	if err != nil {
		return nil, err
	}
	lowest, err := fromLowest(hm, dist)
	if err != nil {
		return nil, err
	}

	cells := steps.Walk(start)
	route := make([]heightmap.Position, len(cells))
	for i, c := range cells {
		route[i] = c.Pos
	}

	s.log.Info().
		Uint32("from_start", n).
		Uint32("from_lowest", lowest).
		Msg("heightmap solved")

	return &Answer{FromStart: n, FromLowest: lowest, Route: route}, nil
}

func endOf(hm *heightmap.Heightmap) (heightmap.Position, error) {
	if hm == nil {
		return heightmap.Position{}, dijkstra.ErrNilHeightmap
	}
	end, ok := hm.End()
	if !ok {
		return heightmap.Position{}, ErrNoEnd
	}
	return end, nil
}

func fromStart(hm *heightmap.Heightmap, dist heightmap.Distances) (uint32, heightmap.Cell, error) {
	pos, ok := hm.Start()
	if !ok {
		return 0, heightmap.Cell{}, ErrNoStart
	}
	start, _ := hm.CellAt(pos)
	n, ok := dist.Of(start)
	if !ok {
		return 0, heightmap.Cell{}, fmt.Errorf("%w: start at (%d,%d)", ErrUnreachable, pos.X, pos.Y)
	}
	return n, start, nil
}

func fromLowest(hm *heightmap.Heightmap, dist heightmap.Distances) (uint32, error) {
	lowest := hm.Lowest()
	n, ok := dist.MinOver(lowest)
	if !ok {
		return 0, fmt.Errorf("%w: %d candidates", ErrNoReachableStart, len(lowest))
	}
	return n, nil
}
