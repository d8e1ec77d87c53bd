package life

import (
	"errors"
	"fmt"
	"strings"
)

// Plaintext pattern notation: one grid row per line, LiveMarker for a live
// cell, any other character for a dead one. Lines starting with
// CommentMarker are documentation and do not count as rows.
const (
	CommentMarker = '!'
	LiveMarker    = 'O'
	namePrefix    = "!Name:"
)

// ErrEmptyPattern is returned when pattern text describes no live cells.
var ErrEmptyPattern = errors.New("pattern has no live cells")

// ParseError reports pattern text that could not be used.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	input := e.Input
	if len(input) > 40 {
		input = input[:40] + "..."
	}
	return fmt.Sprintf("life: parse pattern %q: %v", input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Pattern is a parsed arrangement of live cells relative to its top-left
// corner. Width and Height span the live cells only: trailing dead rows and
// columns of the source text are not represented.
type Pattern struct {
	Name   string
	Cells  []Coord
	Width  int
	Height int
}

// ParsePattern converts plaintext notation into a Pattern.
func ParsePattern(text string) (Pattern, error) {
	var p Pattern
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, string(CommentMarker)) {
			if strings.HasPrefix(line, namePrefix) {
				p.Name = strings.TrimSpace(strings.TrimPrefix(line, namePrefix))
			}
			continue
		}
		for col, r := range []rune(line) {
			if r != LiveMarker {
				continue
			}
			p.Cells = append(p.Cells, C(row, col))
			p.Height = max(p.Height, row+1)
			p.Width = max(p.Width, col+1)
		}
		row++
	}

	if len(p.Cells) == 0 {
		return Pattern{}, &ParseError{Input: text, Err: ErrEmptyPattern}
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error.
// Intended for embedded pattern constants.
func MustParsePattern(text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// InsertPattern stamps p onto the grid centered at (row, col).
// The center is (Height/2, Width/2) of the pattern, so odd leftovers lean
// toward the top-left. Every cell inside the pattern's bounding box is
// cleared first, then the live cells are set; both steps wrap around the
// grid edges.
func (u *Universe) InsertPattern(p Pattern, row, col int) {
	top := row - p.Height/2
	left := col - p.Width/2

	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			u.cells[wrap(top+r, u.height)*u.width+wrap(left+c, u.width)] = Dead
		}
	}
	for _, cell := range p.Cells {
		u.cells[wrap(top+cell.Row, u.height)*u.width+wrap(left+cell.Col, u.width)] = Alive
	}
}

// GliderText is the 3x3 glider spaceship. It travels one cell down and one
// cell right every four generations.
const GliderText = `!Name: Glider
.O.
..O
OOO`

// PulsarText is the 13x13 period-3 pulsar oscillator.
const PulsarText = `!Name: Pulsar
..OOO...OOO..
.............
O....O.O....O
O....O.O....O
O....O.O....O
..OOO...OOO..
.............
..OOO...OOO..
O....O.O....O
O....O.O....O
O....O.O....O
.............
..OOO...OOO..`

var (
	glider = MustParsePattern(GliderText)
	pulsar = MustParsePattern(PulsarText)
)

// InsertGlider stamps a glider centered at (row, col).
func (u *Universe) InsertGlider(row, col int) {
	u.InsertPattern(glider, row, col)
}

// InsertPulsar stamps a pulsar centered at (row, col).
func (u *Universe) InsertPulsar(row, col int) {
	u.InsertPattern(pulsar, row, col)
}
