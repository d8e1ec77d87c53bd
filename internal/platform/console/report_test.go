package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/runner"
)

func TestResultPlain(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).Result(runner.Result{
		Seed:            5,
		Width:           10,
		Height:          8,
		Pattern:         "random",
		Generations:     42,
		PeakPopulation:  30,
		FinalPopulation: 12,
		Outcome:         runner.OutcomeStable,
		Elapsed:         3 * time.Millisecond,
	})

	out := buf.String()
	for _, want := range []string{"random 10x8", "seed: 5", "generations: 42", "12 (peak 30)", "outcome: stable"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain report should not contain escape codes")
	}
}

func TestResultColored(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, true).Result(runner.Result{Pattern: "glider", Outcome: runner.OutcomeExtinct})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("colored report should contain escape codes")
	}
}

func TestBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).Batch([]runner.Result{
		{Seed: 1, Generations: 10, Outcome: runner.OutcomeExtinct},
		{Seed: 2, Generations: 30, Outcome: runner.OutcomeStable},
		{Seed: 3, Generations: 20, Outcome: runner.OutcomeStable},
	})

	out := buf.String()
	for _, want := range []string{"trials: 3", "average generations: 20.0", "trial 2, seed 2, 30 generations", "extinct 1, stable 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("batch report missing %q:\n%s", want, out)
		}
	}
}

func TestBatchEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).Batch(nil)
	if !strings.Contains(buf.String(), "no runs") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestGrid(t *testing.T) {
	u := life.NewEmpty(3, 2)
	u.SetCells(life.C(0, 1), life.C(1, 2))

	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.SetRunes('#', '.')
	r.Grid(u)

	if buf.String() != ".#.\n..#\n" {
		t.Errorf("unexpected grid %q", buf.String())
	}
}
