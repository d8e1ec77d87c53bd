package life

import (
	"fmt"
	"strings"
)

// DiffSentinel marks unused slots at the tail of the diff buffer.
const DiffSentinel = -1

// Default dimensions used by hosts that do not size the grid themselves.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Universe is a toroidal Game of Life grid.
//
// Cells are stored row-major in a flat slice: index = row*width + col.
// Tick writes the next generation into a scratch buffer and swaps the two,
// so stepping never allocates. The diff buffer lists the indexes that
// flipped during the last Tick, terminated by DiffSentinel.
//
// A Universe is not safe for concurrent use. The owner must serialize all
// calls; there is no internal locking.
type Universe struct {
	width      int
	height     int
	cells      []Cell
	next       []Cell
	diff       []int
	generation uint64
	src        Source
}

// Option configures a Universe at construction time.
type Option func(*Universe)

// WithSource sets the coin-flip source used by Randomize.
func WithSource(src Source) Option {
	return func(u *Universe) {
		if src != nil {
			u.src = src
		}
	}
}

// WithSeed is shorthand for WithSource(NewSource(seed)).
func WithSeed(seed int64) Option {
	return func(u *Universe) {
		u.src = NewSource(seed)
	}
}

// New creates a universe with the given dimensions and randomizes it.
// Panics if width or height is not positive.
func New(width, height int, opts ...Option) *Universe {
	u := NewEmpty(width, height, opts...)
	u.Randomize()
	return u
}

// NewEmpty creates a universe with every cell Dead.
// Panics if width or height is not positive.
func NewEmpty(width, height int, opts ...Option) *Universe {
	u := &Universe{}
	for _, opt := range opts {
		opt(u)
	}
	if u.src == nil {
		u.src = NewSource(0)
	}
	u.allocate(width, height)
	return u
}

// allocate replaces every buffer with Dead-filled storage of the given size.
func (u *Universe) allocate(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid universe size %dx%d", width, height))
	}
	n := width * height
	u.width = width
	u.height = height
	u.cells = make([]Cell, n)
	u.next = make([]Cell, n)
	u.diff = make([]int, n)
	u.resetDiff()
	u.generation = 1
}

func (u *Universe) resetDiff() {
	for i := range u.diff {
		u.diff[i] = DiffSentinel
	}
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.height }

// Generation returns the generation counter. It starts at 1 and is reset by
// Randomize, Clear and resizing.
func (u *Universe) Generation() uint64 { return u.generation }

// Cells exposes the current grid, row-major, one 0/1 value per cell.
// The slice is owned by the universe and is only valid until the next Tick,
// which swaps the backing buffers.
func (u *Universe) Cells() []Cell { return u.cells }

// Diff exposes the change list of the last Tick. It always has
// width*height slots; consumers read until DiffSentinel or the end.
func (u *Universe) Diff() []int { return u.diff }

// Changes returns the populated prefix of Diff.
func (u *Universe) Changes() []int {
	for i, idx := range u.diff {
		if idx == DiffSentinel {
			return u.diff[:i]
		}
	}
	return u.diff
}

// Index maps (row, col) to a flat cell index.
// Panics if the coordinate lies outside the grid.
func (u *Universe) Index(row, col int) int {
	if row < 0 || row >= u.height || col < 0 || col >= u.width {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d universe", row, col, u.width, u.height))
	}
	return row*u.width + col
}

// Cell returns the state at (row, col).
func (u *Universe) Cell(row, col int) Cell {
	return u.cells[u.Index(row, col)]
}

// LiveNeighborCount sums the eight Moore neighbors of (row, col) with
// toroidal wraparound.
//
// Offsets are taken from {size-1, 0, 1} modulo the grid size and only the
// (0, 0) pair is skipped. On grids narrower or shorter than 3 several
// offsets land on the same cell, which is then counted more than once:
// a lone live cell on a 1x1 grid sees itself 5 times, and on a 2x2 grid the
// diagonal cell is counted 4 times and each orthogonal cell twice.
func (u *Universe) LiveNeighborCount(row, col int) int {
	count := 0
	for _, dr := range [3]int{u.height - 1, 0, 1} {
		for _, dc := range [3]int{u.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % u.height
			c := (col + dc) % u.width
			count += int(u.cells[r*u.width+c])
		}
	}
	return count
}

// Tick advances the universe by exactly one generation.
func (u *Universe) Tick() {
	u.resetDiff()

	n := 0
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := row*u.width + col
			cell := u.cells[idx]
			next := NextState(cell, u.LiveNeighborCount(row, col))
			u.next[idx] = next
			if next != cell {
				u.diff[n] = idx
				n++
			}
		}
	}

	u.cells, u.next = u.next, u.cells
	u.generation++
}

// Randomize sets every cell Alive or Dead with an independent coin flip.
func (u *Universe) Randomize() {
	for i := range u.cells {
		if u.src.Bool() {
			u.cells[i] = Alive
		} else {
			u.cells[i] = Dead
		}
	}
	u.generation = 1
}

// Clear sets every cell Dead.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
	u.generation = 1
}

// ToggleCell flips the state of a single cell.
func (u *Universe) ToggleCell(row, col int) {
	idx := u.Index(row, col)
	u.cells[idx] = u.cells[idx].Toggled()
}

// SetCells marks every listed cell Alive.
func (u *Universe) SetCells(coords ...Coord) {
	for _, c := range coords {
		u.cells[u.Index(c.Row, c.Col)] = Alive
	}
}

// SetWidth changes the number of columns and resets every cell to Dead.
func (u *Universe) SetWidth(width int) {
	u.allocate(width, u.height)
}

// SetHeight changes the number of rows and resets every cell to Dead.
func (u *Universe) SetHeight(height int) {
	u.allocate(u.width, height)
}

// Resize changes both dimensions and resets every cell to Dead.
func (u *Universe) Resize(width, height int) {
	u.allocate(width, height)
}

// Living returns the number of Alive cells.
func (u *Universe) Living() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}

// String renders the grid with one line per row.
func (u *Universe) String() string {
	var sb strings.Builder
	sb.Grow(u.width*u.height*3 + u.height)
	for row := 0; row < u.height; row++ {
		for _, c := range u.cells[row*u.width : (row+1)*u.width] {
			if c == Alive {
				sb.WriteRune('◼')
			} else {
				sb.WriteRune('◻')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// wrap reduces v into [0, n).
func wrap(v, n int) int {
	return (v%n + n) % n
}
