package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/console"
	"github.com/vovakirdan/tui-life/internal/runner"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunPattern  string
	flagWidth       int
	flagHeight      int
	flagGenerations int
	flagTrials      int
	flagWorkers     int
	flagKeepGoing   bool
	flagShowGrid    bool
	flagSave        bool
	flagNoColor     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run universes without a UI and report how they ended",
	Long: `Advance a universe until it dies out, stops changing, or reaches the
generation limit, then print a report. With --trials the runs use
consecutive seeds and execute in parallel.

Examples:
  life run
  life run --pattern acorn --width 200 --height 120 --generations 6000
  life run --trials 32 --seed 1000 --save
  life run --pattern diehard --show-grid`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunPattern, "pattern", runner.RandomPattern, "Catalog pattern, or 'random' for a soup")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Universe width (default from config)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Universe height (default from config)")
	runCmd.Flags().IntVar(&flagGenerations, "generations", 0, "Generation limit (default from config)")
	runCmd.Flags().IntVar(&flagTrials, "trials", 1, "Number of independent runs")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel runs (default: number of CPUs)")
	runCmd.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "Do not stop early on stable or extinct universes")
	runCmd.Flags().BoolVar(&flagShowGrid, "show-grid", false, "Print the final grid of a single run")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record the results in the runs database")
	runCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	opts := runner.Options{
		Width:          cfg.Universe.Width,
		Height:         cfg.Universe.Height,
		Seed:           cfg.Universe.Seed,
		Pattern:        flagRunPattern,
		MaxGenerations: cfg.Simulation.MaxGenerations,
		StopWhenStable: cfg.Simulation.StopWhenStable && !flagKeepGoing,
	}
	if flagWidth > 0 {
		opts.Width = flagWidth
	}
	if flagHeight > 0 {
		opts.Height = flagHeight
	}
	if flagGenerations > 0 {
		opts.MaxGenerations = flagGenerations
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(logger)
	r.SetWorkers(flagWorkers)

	color := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	report := console.NewReporter(os.Stdout, color)
	report.SetRunes(cfg.LiveRune(), '·')

	var results []runner.Result
	if flagTrials <= 1 {
		res, err := r.Run(ctx, opts)
		if err != nil && res.Universe == nil {
			return err
		}
		if err != nil {
			logger.Warn("run interrupted", "generations", res.Generations)
		}
		report.Result(res)
		if flagShowGrid {
			fmt.Println()
			report.Grid(res.Universe)
		}
		results = append(results, res)
	} else {
		results, err = r.RunBatch(ctx, opts, flagTrials)
		if err != nil {
			return err
		}
		report.Batch(results)
	}

	if flagSave {
		return saveResults(results)
	}
	return nil
}

// saveResults records run statistics in the runs database.
func saveResults(results []runner.Result) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, res := range results {
		if _, err := store.SaveRun(storage.RunRecord{
			Seed:            res.Seed,
			Width:           res.Width,
			Height:          res.Height,
			Pattern:         res.Pattern,
			Generations:     res.Generations,
			PeakPopulation:  res.PeakPopulation,
			FinalPopulation: res.FinalPopulation,
			Outcome:         string(res.Outcome),
		}); err != nil {
			return err
		}
	}
	fmt.Printf("\nSaved %d run(s) to %s\n", len(results), flagDBPath)
	return nil
}
