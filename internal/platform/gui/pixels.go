// Package gui hosts the universe in a desktop window. The window itself
// needs the ebiten build tag; pixel conversion is always available.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: build with -tags ebiten for window support")

// Options configures the window host.
type Options struct {
	Width    int
	Height   int
	Scale    int // screen pixels per cell
	TickRate int // generations per second
	Seed     int64
	Pattern  string // registry id; empty for a random soup
	On       color.RGBA
	Off      color.RGBA
}

// DefaultOptions returns a 128x96 board drawn at 6 pixels per cell.
func DefaultOptions() Options {
	return Options{
		Width:    128,
		Height:   96,
		Scale:    6,
		TickRate: 15,
		On:       color.RGBA{R: 0x5f, G: 0xff, B: 0x5f, A: 0xff},
		Off:      color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
	}
}

// fillRGBA converts every cell into RGBA pixels in buf.
func fillRGBA(buf []byte, cells []life.Cell, on, off color.RGBA) {
	for i, c := range cells {
		setPixel(buf, i, c, on, off)
	}
}

// patchRGBA rewrites only the pixels listed in diff, stopping at the
// first sentinel.
func patchRGBA(buf []byte, cells []life.Cell, diff []int, on, off color.RGBA) {
	for _, idx := range diff {
		if idx == life.DiffSentinel {
			return
		}
		setPixel(buf, idx, cells[idx], on, off)
	}
}

func setPixel(buf []byte, i int, c life.Cell, on, off color.RGBA) {
	col := off
	if c == life.Alive {
		col = on
	}
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

const hudHelp = "space run/pause  n step  r reset  c clear  g/p glider/pulsar  h hide"

// hudText is the status line drawn over the board.
func hudText(u *life.Universe, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  alive %d  %s", u.Generation(), u.Living(), state)
}
