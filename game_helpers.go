package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sheikhrachel/gol-fixpoint/model"
	"github.com/sheikhrachel/gol-fixpoint/utils"
)

// seed is a named starting grid
type seed struct {
	name string
	grid *model.Grid
}

// loadConfig reads the config file, falling back to defaults when it is
// missing, then applies environment overrides
func loadConfig(path string, getenv func(string) string, logger zerolog.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		logger.Info().Str("path", path).Msg("using default configuration (config file not found)")
		config = utils.DefaultConfig()
	}
	if err = config.ApplyEnv(getenv); err != nil {
		return config, err
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// loadSeeds resolves the grids to run: a seed file replaces the named
// patterns, and a random grid is appended when one is configured
func loadSeeds(config utils.Config) ([]seed, error) {
	if config.PatternFile != "" {
		f, err := os.Open(config.PatternFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[loadSeeds] failed to open seed file: %+v", config.PatternFile)
		}
		defer f.Close()

		g, err := model.ParseGrid(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "[loadSeeds] %s", config.PatternFile)
		}
		return []seed{{name: config.PatternFile, grid: g}}, nil
	}

	seeds := make([]seed, 0, len(config.Patterns)+1)
	for _, name := range config.Patterns {
		g, err := model.LoadPattern(name)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed{name: name, grid: g})
	}

	if config.RandomEnabled() {
		g, err := model.RandomGrid(config.RandomHeight, config.RandomWidth, config.RandomDensity, config.RandomSeed)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed{name: fmt.Sprintf("random-%d", config.RandomSeed), grid: g})
	}
	return seeds, nil
}

// runSeed runs one seed to its fixed point, rendering every generation to out
func runSeed(
	ctx context.Context,
	s seed,
	config utils.Config,
	pool *model.GridPool,
	out io.Writer,
	logger zerolog.Logger,
) (model.Result, error) {
	renderer, err := model.NewRenderer(config.Renderer, out)
	if err != nil {
		return model.Result{}, err
	}

	sim, err := model.NewSimulator(s.grid,
		model.WithParallel(config.UseParallel),
		model.WithPool(pool),
		model.WithMaxGenerations(config.MaxGenerations),
		model.WithLogger(logger.With().Str("seed", s.name).Logger()),
	)
	if err != nil {
		return model.Result{}, err
	}

	fmt.Fprintf(out, "Demonstrating %s\n", s.name)
	fmt.Fprintln(out, "Running Game of Life")

	tracked := &statsRenderer{next: renderer, stats: utils.NewStats(), lastFrame: time.Now()}
	res, err := sim.Run(ctx, tracked)
	tracked.stats.Summary(logger.Info()).Str("seed", s.name).Bool("converged", res.Converged).Msg("run finished")
	return res, err
}

// statsRenderer feeds every rendered generation into Stats before passing it on
type statsRenderer struct {
	next      model.Renderer
	stats     *utils.Stats
	lastFrame time.Time
}

func (r *statsRenderer) Render(generation int, g *model.Grid) error {
	now := time.Now()
	r.stats.Update(generation, g.CountLivingCells(), now.Sub(r.lastFrame))
	r.lastFrame = now
	return r.next.Render(generation, g)
}

func (r *statsRenderer) NotifyConverged(generation int) error {
	if n, ok := r.next.(model.ConvergenceNotifier); ok {
		return n.NotifyConverged(generation)
	}
	return nil
}
