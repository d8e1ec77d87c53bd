// Package life implements Conway's Game of Life on a toroidal grid.
// It contains no terminal or storage dependencies so hosts (TUI, SSH,
// headless runner) can drive it directly and render from the diff.
package life

import "fmt"

// Cell is the state of a single grid cell.
// Alive cells are 1 so neighbor counts are plain sums.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Coord addresses a cell by row and column.
// Rows grow downward, columns grow to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// NextState applies the Game of Life transition rule to one cell.
//
//	Alive, <2 neighbors   -> Dead
//	Alive, 2-3 neighbors  -> Alive
//	Alive, >3 neighbors   -> Dead
//	Dead, 3 neighbors     -> Alive
//	otherwise             -> unchanged
func NextState(cell Cell, liveNeighbors int) Cell {
	switch {
	case cell == Alive && liveNeighbors < 2:
		return Dead
	case cell == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case cell == Alive && liveNeighbors > 3:
		return Dead
	case cell == Dead && liveNeighbors == 3:
		return Alive
	default:
		return cell
	}
}
