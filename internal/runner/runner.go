// Package runner advances universes without a user interface and reports
// how each run ended.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/logging"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// RandomPattern names a coin-flip soup instead of a registered pattern.
const RandomPattern = "random"

// Outcome describes why a run stopped.
type Outcome string

const (
	OutcomeExtinct   Outcome = "extinct"   // no live cells left
	OutcomeStable    Outcome = "stable"    // a tick changed nothing
	OutcomeLimit     Outcome = "limit"     // reached MaxGenerations
	OutcomeCancelled Outcome = "cancelled" // context done
)

// Options configures a single run.
type Options struct {
	Width          int
	Height         int
	Seed           int64  // 0 picks a time based seed, reported in Result
	Pattern        string // registry id; empty or RandomPattern for a soup
	MaxGenerations int
	StopWhenStable bool
}

// Result summarizes a finished run.
type Result struct {
	Seed            int64
	Width           int
	Height          int
	Pattern         string
	Generations     int // ticks performed
	PeakPopulation  int
	FinalPopulation int
	Outcome         Outcome
	Elapsed         time.Duration
	Universe        *life.Universe // final state
}

// Runner executes headless simulations.
type Runner struct {
	logger  *log.Logger
	workers int
}

// New creates a runner. A nil logger discards output.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{
		logger:  logger,
		workers: runtime.NumCPU(),
	}
}

// SetWorkers limits how many universes RunBatch advances at once.
func (r *Runner) SetWorkers(n int) {
	if n > 0 {
		r.workers = n
	}
}

// Build creates the starting universe for opts.
func Build(opts Options) (*life.Universe, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("runner: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Pattern == "" || opts.Pattern == RandomPattern {
		return life.New(opts.Width, opts.Height, life.WithSeed(opts.Seed)), nil
	}

	p, err := registry.Lookup(opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	u := life.NewEmpty(opts.Width, opts.Height, life.WithSeed(opts.Seed))
	u.InsertPattern(p, opts.Height/2, opts.Width/2)
	return u, nil
}

// Run advances one universe until it stops. On cancellation the partial
// result is returned together with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Pattern == "" {
		opts.Pattern = RandomPattern
	}

	u, err := Build(opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Seed:     opts.Seed,
		Width:    opts.Width,
		Height:   opts.Height,
		Pattern:  opts.Pattern,
		Outcome:  OutcomeLimit,
		Universe: u,
	}

	start := time.Now()
	population := u.Living()
	res.PeakPopulation = population

	for res.Generations < opts.MaxGenerations {
		if opts.StopWhenStable && population == 0 {
			res.Outcome = OutcomeExtinct
			break
		}
		if err := ctx.Err(); err != nil {
			res.Outcome = OutcomeCancelled
			res.FinalPopulation = population
			res.Elapsed = time.Since(start)
			return res, err
		}

		u.Tick()
		res.Generations++

		changes := u.Changes()
		cells := u.Cells()
		for _, idx := range changes {
			if cells[idx] == life.Alive {
				population++
			} else {
				population--
			}
		}
		res.PeakPopulation = max(res.PeakPopulation, population)

		if opts.StopWhenStable && len(changes) == 0 {
			res.Outcome = OutcomeStable
			break
		}
	}

	if opts.StopWhenStable && population == 0 {
		res.Outcome = OutcomeExtinct
	}
	res.FinalPopulation = population
	res.Elapsed = time.Since(start)

	r.logger.Debug("run finished",
		"pattern", res.Pattern,
		"seed", res.Seed,
		"generations", res.Generations,
		"outcome", res.Outcome,
		"elapsed", res.Elapsed,
	)
	return res, nil
}

// RunBatch runs trials independent universes concurrently. Trial i uses
// seed base.Seed+i, so a batch is reproducible from its first seed.
// Results are returned in trial order. Each goroutine owns its universe.
func (r *Runner) RunBatch(ctx context.Context, base Options, trials int) ([]Result, error) {
	if trials <= 0 {
		return nil, nil
	}
	if base.Seed == 0 {
		base.Seed = time.Now().UnixNano()
	}

	results := make([]Result, trials)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range trials {
		opts := base
		opts.Seed = base.Seed + int64(i)
		g.Go(func() error {
			res, err := r.Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("runner: trial %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("batch finished", "trials", trials, "first_seed", base.Seed)
	return results, nil
}
