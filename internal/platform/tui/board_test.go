package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.RunRecord{
		{Seed: 1, Width: 16, Height: 16, Pattern: "random", Generations: 120, PeakPopulation: 90, Outcome: "stable"},
		{Seed: 2, Width: 16, Height: 16, Pattern: "random", Generations: 300, PeakPopulation: 70, Outcome: "limit"},
		{Seed: 3, Width: 64, Height: 64, Pattern: "acorn", Generations: 1000, PeakPopulation: 400, Outcome: "limit"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func boardUpdate(t *testing.T, m BoardModel, msg tea.Msg) BoardModel {
	t.Helper()
	next, _ := m.Update(msg)
	b, ok := next.(BoardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return b
}

func TestBoardTabs(t *testing.T) {
	m := NewBoardModel(seededStore(t), 100, 30)

	if m.Pattern() != allPatterns {
		t.Fatalf("board should open on %q, got %q", allPatterns, m.Pattern())
	}
	if len(m.Runs()) != 3 || m.Runs()[0].Pattern != "acorn" {
		t.Errorf("all tab should list every run, longest first: %v", m.Runs())
	}

	// all -> acorn -> random
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Pattern() != "random" {
		t.Fatalf("expected random tab, got %q", m.Pattern())
	}
	if len(m.Runs()) != 2 || m.Runs()[0].Generations != 300 {
		t.Errorf("unexpected random runs %v", m.Runs())
	}

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Pattern() != allPatterns {
		t.Errorf("tabs should wrap, got %q", m.Pattern())
	}
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Pattern() != "random" {
		t.Errorf("shift+tab should wrap backwards, got %q", m.Pattern())
	}
}

func TestBoardRecentOrder(t *testing.T) {
	m := NewBoardModel(seededStore(t), 100, 30)
	m = boardUpdate(t, m, runeKey("o"))
	if len(m.Runs()) != 3 || m.Runs()[0].Seed != 3 {
		t.Errorf("recent order should put the last saved run first: %v", m.Runs())
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title should reflect the ordering")
	}
}

func TestBoardWithoutStore(t *testing.T) {
	m := NewBoardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty board should say so:\n%s", m.View())
	}
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Pattern() != allPatterns {
		t.Errorf("single tab should stay selected, got %q", m.Pattern())
	}
}

func TestBoardQuit(t *testing.T) {
	m := NewBoardModel(nil, 60, 20)
	m = boardUpdate(t, m, runeKey("q"))
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
