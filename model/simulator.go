package model

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrGenerationLimit is returned by Run when the generation cap is hit
// before the grid settles
var ErrGenerationLimit = errors.New("generation limit reached")

// State of a simulation run
type State int

const (
	Running State = iota
	Converged
)

// String returns "running" or "converged"
func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "running"
}

// Simulator owns the current generation of a grid and advances it until a
// fixed point. It is not safe for concurrent use.
type Simulator struct {
	grid       *Grid
	generation int
	state      State

	parallel       bool
	pool           *GridPool
	maxGenerations int
	log            zerolog.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithParallel spreads each step across worker goroutines
func WithParallel(parallel bool) Option {
	return func(s *Simulator) { s.parallel = parallel }
}

// WithPool recycles discarded generations through pool
func WithPool(pool *GridPool) Option {
	return func(s *Simulator) { s.pool = pool }
}

// WithMaxGenerations caps Run; 0 means no cap
func WithMaxGenerations(n int) Option {
	return func(s *Simulator) { s.maxGenerations = n }
}

// WithLogger routes step and convergence logging to l
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// Result summarises a finished run
type Result struct {
	Generation int
	Population int
	Converged  bool
}

// NewSimulator starts a simulation at generation 0 from a copy of seed
func NewSimulator(seed *Grid, opts ...Option) (*Simulator, error) {
	if seed == nil {
		return nil, errors.Wrap(ErrInvalidGrid, "[NewSimulator] nil seed")
	}
	if seed.height == 0 || seed.width == 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "[NewSimulator] empty seed %dx%d", seed.height, seed.width)
	}
	s := &Simulator{
		grid:  seed.Clone(),
		state: Running,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxGenerations < 0 {
		return nil, errors.Errorf("[NewSimulator] negative generation cap: %d", s.maxGenerations)
	}
	return s, nil
}

// Generation returns the number of completed steps
func (s *Simulator) Generation() int {
	return s.generation
}

// Grid returns the current generation. It stays valid until the next Step.
func (s *Simulator) Grid() *Grid {
	return s.grid
}

// State reports whether the run is still going or has settled
func (s *Simulator) State() State {
	return s.state
}

// Converged reports whether the last Step left the grid unchanged
func (s *Simulator) Converged() bool {
	return s.state == Converged
}

// Step advances one generation and reports whether any cell changed. The
// generation counter moves on either way; once Step reports false the grid is
// a fixed point and further steps keep reporting false.
func (s *Simulator) Step() bool {
	var next *Grid
	if s.parallel {
		next = s.grid.NextGenerationParallel(s.pool)
	} else {
		next = s.grid.NextGeneration(s.pool)
	}

	changed := !next.Equal(s.grid)

	GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
	if !changed {
		s.state = Converged
	}

	s.log.Debug().
		Int("generation", s.generation).
		Bool("changed", changed).
		Msg("step")

	return changed
}

// Run renders the seed, then steps and renders each generation until the grid
// stops changing. A renderer that also implements ConvergenceNotifier hears
// about the fixed point before the final generation is rendered. Oscillators
// never settle; stop those by cancelling ctx or setting a generation cap.
func (s *Simulator) Run(ctx context.Context, r Renderer) (Result, error) {
	if err := r.Render(s.generation, s.grid); err != nil {
		return s.result(), errors.Wrapf(err, "[Run] render generation %d", s.generation)
	}

	for !s.Converged() {
		if err := ctx.Err(); err != nil {
			return s.result(), errors.Wrapf(err, "[Run] stopped at generation %d", s.generation)
		}
		if s.maxGenerations > 0 && s.generation >= s.maxGenerations {
			return s.result(), errors.Wrapf(ErrGenerationLimit, "[Run] cap %d", s.maxGenerations)
		}

		if !s.Step() {
			if n, ok := r.(ConvergenceNotifier); ok {
				if err := n.NotifyConverged(s.generation); err != nil {
					return s.result(), errors.Wrapf(err, "[Run] notify convergence at generation %d", s.generation)
				}
			}
		}

		if err := r.Render(s.generation, s.grid); err != nil {
			return s.result(), errors.Wrapf(err, "[Run] render generation %d", s.generation)
		}
	}

	s.log.Info().
		Int("generation", s.generation).
		Int("population", s.grid.CountLivingCells()).
		Msg("fixed point reached")

	return s.result(), nil
}

func (s *Simulator) result() Result {
	return Result{
		Generation: s.generation,
		Population: s.grid.CountLivingCells(),
		Converged:  s.Converged(),
	}
}
