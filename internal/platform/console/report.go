// Package console prints headless run results to a plain terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/runner"
)

// Reporter writes colored run reports.
type Reporter struct {
	w        io.Writer
	au       aurora.Aurora
	liveRune string
	deadRune string
}

// NewReporter creates a reporter. Colors are emitted only when color is true.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{
		w:        w,
		au:       aurora.NewAurora(color),
		liveRune: "█",
		deadRune: "·",
	}
}

// SetRunes changes the glyphs used by Grid.
func (r *Reporter) SetRunes(live, dead rune) {
	r.liveRune = string(live)
	r.deadRune = string(dead)
}

func (r *Reporter) outcome(o runner.Outcome) string {
	switch o {
	case runner.OutcomeExtinct:
		return r.au.Red(string(o)).String()
	case runner.OutcomeStable:
		return r.au.Cyan(string(o)).String()
	case runner.OutcomeCancelled:
		return r.au.Yellow(string(o)).String()
	default:
		return r.au.Green(string(o)).String()
	}
}

func (r *Reporter) field(name string, format string, values ...any) {
	fmt.Fprintf(r.w, " %s: "+format+"\n", append([]any{r.au.Green(name).String()}, values...)...)
}

// Result prints one run.
func (r *Reporter) Result(res runner.Result) {
	fmt.Fprintln(r.w, r.au.Bold(fmt.Sprintf("%s %dx%d", res.Pattern, res.Width, res.Height)))
	r.field("seed", "%d", res.Seed)
	r.field("generations", "%d", res.Generations)
	r.field("population", "%d (peak %d)", res.FinalPopulation, res.PeakPopulation)
	r.field("outcome", "%s", r.outcome(res.Outcome))
	r.field("elapsed", "%s", res.Elapsed.Round(time.Microsecond))
}

// Batch prints a one-line summary per trial followed by totals.
func (r *Reporter) Batch(results []runner.Result) {
	if len(results) == 0 {
		fmt.Fprintln(r.w, r.au.Yellow("no runs"))
		return
	}

	fmt.Fprintf(r.w, "%-6s %-20s %8s %8s %8s  %s\n", "TRIAL", "SEED", "GENS", "PEAK", "FINAL", "OUTCOME")
	counts := make(map[runner.Outcome]int)
	longest := 0
	total := 0
	for i, res := range results {
		fmt.Fprintf(r.w, "%-6d %-20d %8d %8d %8d  %s\n",
			i+1, res.Seed, res.Generations, res.PeakPopulation, res.FinalPopulation, r.outcome(res.Outcome))
		counts[res.Outcome]++
		total += res.Generations
		if res.Generations > results[longest].Generations {
			longest = i
		}
	}

	fmt.Fprintln(r.w)
	r.field("trials", "%d", len(results))
	r.field("average generations", "%.1f", float64(total)/float64(len(results)))
	r.field("longest", "trial %d, seed %d, %d generations", longest+1, results[longest].Seed, results[longest].Generations)
	var parts []string
	for _, o := range []runner.Outcome{runner.OutcomeExtinct, runner.OutcomeStable, runner.OutcomeLimit, runner.OutcomeCancelled} {
		if counts[o] > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r.outcome(o), counts[o]))
		}
	}
	r.field("outcomes", "%s", strings.Join(parts, ", "))
}

// Grid prints the universe with live cells highlighted.
func (r *Reporter) Grid(u *life.Universe) {
	live := r.au.BrightGreen(r.liveRune).String()
	var b strings.Builder
	cells := u.Cells()
	for row := 0; row < u.Height(); row++ {
		for _, c := range cells[row*u.Width() : (row+1)*u.Width()] {
			if c == life.Alive {
				b.WriteString(live)
			} else {
				b.WriteString(r.deadRune)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.w, b.String())
}
