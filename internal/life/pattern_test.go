package life

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParseGlider(t *testing.T) {
	p, err := ParsePattern(GliderText)
	if err != nil {
		t.Fatalf("ParsePattern() failed: %v", err)
	}

	if p.Name != "Glider" {
		t.Errorf("expected name Glider, got %q", p.Name)
	}
	if p.Width != 3 || p.Height != 3 {
		t.Errorf("expected 3x3 bounding box, got %dx%d", p.Width, p.Height)
	}

	want := []Coord{C(0, 1), C(1, 2), C(2, 0), C(2, 1), C(2, 2)}
	if !slices.Equal(p.Cells, want) {
		t.Errorf("expected cells %v, got %v", want, p.Cells)
	}
}

func TestParsePulsar(t *testing.T) {
	p, err := ParsePattern(PulsarText)
	if err != nil {
		t.Fatalf("ParsePattern() failed: %v", err)
	}

	if p.Width != 13 || p.Height != 13 {
		t.Errorf("expected 13x13 bounding box, got %dx%d", p.Width, p.Height)
	}
	if len(p.Cells) != 48 {
		t.Errorf("expected 48 live cells, got %d", len(p.Cells))
	}
}

func TestParseBoundingBoxIgnoresTrailingDeadCells(t *testing.T) {
	testCases := []struct {
		name          string
		text          string
		width, height int
	}{
		{"trailing columns", "O....\n.O...", 2, 2},
		{"trailing rows", "O\n.\n.\n", 1, 1},
		{"leading dead space counts", "...\n..O", 3, 2},
		{"comments do not count as rows", "!c\nO\n!c\n.O", 2, 2},
		{"crlf line endings", "O.\r\n.O\r\n", 2, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePattern(tc.text)
			if err != nil {
				t.Fatalf("ParsePattern() failed: %v", err)
			}
			if p.Width != tc.width || p.Height != tc.height {
				t.Errorf("expected %dx%d, got %dx%d", tc.width, tc.height, p.Width, p.Height)
			}
		})
	}
}

func TestParseEmptyPatternFails(t *testing.T) {
	inputs := []string{
		"",
		"!Name: Nothing",
		"!only a comment\n!and another",
		"...\n...\n",
		"!O\n.o.",
	}

	for _, input := range inputs {
		_, err := ParsePattern(input)
		if err == nil {
			t.Errorf("ParsePattern(%q): expected error", input)
			continue
		}
		if !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("ParsePattern(%q): expected ErrEmptyPattern, got %v", input, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParsePattern(%q): expected *ParseError, got %T", input, err)
		} else if perr.Input != input {
			t.Errorf("ParseError should carry the offending input, got %q", perr.Input)
		}
	}
}

func TestParseErrorDoesNotMutateUniverse(t *testing.T) {
	u := New(6, 6, WithSeed(8))
	before := slices.Clone(u.Cells())

	if p, err := ParsePattern("!empty"); err == nil {
		u.InsertPattern(p, 3, 3)
		t.Fatal("expected parse error")
	}

	if !slices.Equal(before, u.Cells()) {
		t.Error("universe changed after a failed parse")
	}
}

func TestParseErrorMessageTruncatesInput(t *testing.T) {
	_, err := ParsePattern(strings.Repeat(".", 100))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Error()) > 120 {
		t.Errorf("error message too long: %q", err.Error())
	}
}

func TestMustParsePatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParsePattern("!nothing here")
}

func TestInsertPatternClearsBoundingBox(t *testing.T) {
	u := NewEmpty(5, 5)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			u.SetCells(C(row, col))
		}
	}

	u.InsertGlider(2, 2)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			inBox := row >= 1 && row <= 3 && col >= 1 && col <= 3
			want := Alive
			if inBox {
				want = Dead
				switch C(row-1, col-1) {
				case C(0, 1), C(1, 2), C(2, 0), C(2, 1), C(2, 2):
					want = Alive
				}
			}
			if got := u.Cell(row, col); got != want {
				t.Errorf("cell (%d,%d): expected %v, got %v", row, col, want, got)
			}
		}
	}
}

func TestInsertPatternWraps(t *testing.T) {
	u := NewEmpty(5, 5)
	u.InsertGlider(0, 0)

	// Anchor is (-1,-1), which wraps to (4,4).
	expectLive(t, u, C(4, 0), C(0, 1), C(1, 4), C(1, 0), C(1, 1))
}

func TestInsertPatternCentersTowardTopLeft(t *testing.T) {
	p, err := ParsePattern("OO\nOO")
	if err != nil {
		t.Fatalf("ParsePattern() failed: %v", err)
	}

	u := NewEmpty(6, 6)
	u.InsertPattern(p, 3, 3)

	// Center of a 2x2 pattern is (1,1), so the anchor is (2,2).
	expectLive(t, u, C(2, 2), C(2, 3), C(3, 2), C(3, 3))
}

func TestPulsarOscillates(t *testing.T) {
	u := NewEmpty(21, 21)
	u.InsertPulsar(10, 10)
	start := slices.Clone(u.Cells())

	if u.Living() != 48 {
		t.Fatalf("expected 48 live cells after insert, got %d", u.Living())
	}

	u.Tick()
	if slices.Equal(start, u.Cells()) {
		t.Fatal("pulsar should change after one tick")
	}
	u.Tick()
	u.Tick()

	if !slices.Equal(start, u.Cells()) {
		t.Errorf("pulsar should repeat with period 3:\n%s", u)
	}
}
