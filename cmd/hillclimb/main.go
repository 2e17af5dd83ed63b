// Command hillclimb reads a heightmap and prints the fewest steps to its
// end marker, from the start marker (part 1) and from any lowest cell (part 2).
//
// Usage:
//
//	hillclimb [-config hillclimb.yaml] [-input FILE|-] [-part 0|1|2]
//	          [-algorithm dijkstra|bfs] [-render] [-log-level LEVEL]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
	"github.com/katalvlaran/hillclimb/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $HILLCLIMB_CONFIG or hillclimb.yaml)")
	flag.String("input", "", "heightmap file, or - for stdin")
	flag.Int("part", 0, "answer to print: 1, 2, or 0 for both")
	flag.String("algorithm", "", "search algorithm: dijkstra or bfs")
	flag.Bool("render", false, "draw the route from S to E")
	flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	envErr := godotenv.Load()

	boot := logger.Console("info")
	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := applyFlags(cfg); err != nil {
		boot.Fatal().Err(err).Msg("Invalid flags")
	}

	log := logger.Console(cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("hillclimb failed")
	}
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "input":
			cfg.Input = v
		case "part":
			cfg.Part, err = strconv.Atoi(v)
		case "algorithm":
			cfg.Algorithm = v
		case "render":
			cfg.Render = v == "true"
		case "log-level":
			cfg.LogLevel = v
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func run(cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	hm, err := readHeightmap(cfg.Input)
	if err != nil {
		return err
	}
	log.Info().
		Str("input", cfg.Input).
		Str("size", fmt.Sprintf("%dx%d", hm.Width(), hm.Height())).
		Str("cells", humanize.Comma(int64(hm.Len()))).
		Msg("Heightmap loaded")

	algo, err := hillclimb.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	solver, err := hillclimb.NewSolver(hillclimb.WithAlgorithm(algo), hillclimb.WithLogger(log))
	if err != nil {
		return err
	}

	if cfg.Part == 2 && cfg.Render {
		log.Warn().Msg("Route rendering follows the start marker, skipped for part 2")
	}
	if cfg.Part == 2 || (cfg.Part == 1 && !cfg.Render) {
		n, err := solvePart(solver, hm, cfg.Part)
		if err != nil {
			return err
		}
		printResult(out, cfg.Part, n)
		return nil
	}

	ans, err := solver.Solve(hm)
	if err != nil {
		return err
	}
	printResult(out, 1, ans.FromStart)
	if cfg.Part != 1 {
		printResult(out, 2, ans.FromLowest)
	}
	if cfg.Render {
		fmt.Fprint(out, hillclimb.Render(hm, ans.Route))
	}
	return nil
}

func solvePart(s *hillclimb.Solver, hm *heightmap.Heightmap, part int) (uint32, error) {
	switch part {
	case 1:
		return s.FewestStepsFromStart(hm)
	case 2:
		return s.FewestStepsFromLowest(hm)
	}
	return 0, errors.New("part must be 1 or 2")
}

func readHeightmap(path string) (*heightmap.Heightmap, error) {
	if path == "-" {
		return heightmap.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return heightmap.Read(f)
}

func printResult(w io.Writer, part int, n uint32) {
	fmt.Fprintf(w, "Result for day 12 part %d: %d\n", part, n)
}
