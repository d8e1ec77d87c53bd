package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunsPattern string
	flagRunsLimit   int
	flagRunsRecent  bool
	flagRunsTUI     bool
	flagRunsStats   bool
	flagRunsClear   bool
	flagRunsID      int64
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display runs saved with 'life run --save'. Only statistics are
recorded: seed, size, pattern, generations, population and outcome.

Examples:
  life runs
  life runs --pattern random --limit 20
  life runs --recent
  life runs --stats
  life runs --id 12
  life runs --tui
  life runs --clear --pattern random`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsPattern, "pattern", "", "Only runs of this pattern")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Newest first instead of longest first")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Open the interactive runs board")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-pattern totals")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete runs (all, or those of --pattern)")
	runsCmd.Flags().Int64Var(&flagRunsID, "id", 0, "Show a single run")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		n, err := store.ClearRuns(flagRunsPattern)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d run(s).\n", n)
		return nil

	case flagRunsTUI:
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunBoard(store, width, height)

	case flagRunsStats:
		return printStats(store)

	case flagRunsID > 0:
		return printRun(store, flagRunsID)
	}

	var runs []storage.RunRecord
	if flagRunsRecent {
		runs, err = store.RecentRuns(flagRunsLimit)
	} else {
		runs, err = store.TopRuns(flagRunsPattern, flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life run --save' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %7s  %6s  %6s  %-9s  %-9s  %-20s  %s\n",
		"Rank", "Pattern", "Gens", "Peak", "Final", "Outcome", "Size", "Seed", "Date")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %7d  %6d  %6d  %-9s  %-9s  %-20d  %s\n",
			i+1, r.Pattern, r.Generations, r.PeakPopulation, r.FinalPopulation, r.Outcome,
			fmt.Sprintf("%dx%d", r.Width, r.Height), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRun(store *storage.Store, id int64) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %d", id)
	}

	fmt.Printf("Run #%d\n\n", r.ID)
	fmt.Printf("  Pattern:     %s\n", r.Pattern)
	fmt.Printf("  Size:        %dx%d\n", r.Width, r.Height)
	fmt.Printf("  Seed:        %d\n", r.Seed)
	fmt.Printf("  Generations: %d\n", r.Generations)
	fmt.Printf("  Peak:        %d\n", r.PeakPopulation)
	fmt.Printf("  Final:       %d\n", r.FinalPopulation)
	fmt.Printf("  Outcome:     %s\n", r.Outcome)
	fmt.Printf("  Recorded:    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Printf("Replay with: life run --pattern %s --seed %d --width %d --height %d\n",
		r.Pattern, r.Seed, r.Width, r.Height)
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %5s  %8s  %9s  %8s  %s\n", "Pattern", "Runs", "Longest", "Avg gens", "Max peak", "Last run")
	for _, st := range sortedStats(stats) {
		fmt.Printf("  %-12s  %5d  %8d  %9.1f  %8d  %s\n",
			st.Pattern, st.Runs, st.Longest, st.AvgGenerations, st.MaxPeak, st.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}

// sortedStats orders per-pattern totals by run count, then name.
func sortedStats(stats map[string]*storage.RunStats) []*storage.RunStats {
	out := make([]*storage.RunStats, 0, len(stats))
	for _, st := range stats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Runs != out[j].Runs {
			return out[i].Runs > out[j].Runs
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}
