//go:build ebiten

package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Game adapts a universe to the ebiten.Game interface.
type Game struct {
	universe *life.Universe
	opts     Options
	pattern  *life.Pattern

	pixels []byte
	image  *ebiten.Image

	paused   bool
	hideHUD  bool
	tickOnce bool
	frames   int
	dirty    bool
}

// New constructs a Game for the provided options.
func New(opts Options) (*Game, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultOptions().TickRate
	}

	g := &Game{
		opts:   opts,
		pixels: make([]byte, opts.Width*opts.Height*4),
		image:  ebiten.NewImage(opts.Width, opts.Height),
	}
	if opts.Pattern != "" {
		p, err := registry.Lookup(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("gui: %w", err)
		}
		g.pattern = &p
	}
	g.universe = life.NewEmpty(opts.Width, opts.Height, life.WithSeed(opts.Seed))
	g.Reset()
	return g, nil
}

// Reset restores the configured start.
func (g *Game) Reset() {
	if g.pattern != nil {
		g.universe.Clear()
		g.universe.InsertPattern(*g.pattern, g.opts.Height/2, g.opts.Width/2)
	} else {
		g.universe.Randomize()
	}
	g.dirty = true
}

// cursorCell maps the mouse position to a board cell.
func (g *Game) cursorCell() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	row, col := y/g.opts.Scale, x/g.opts.Scale
	if row < 0 || row >= g.opts.Height || col < 0 || col >= g.opts.Width {
		return 0, 0, false
	}
	return row, col, true
}

// Update handles per-frame input and advances the universe at TickRate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hideHUD = !g.hideHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.universe.Clear()
		g.dirty = true
	}

	if row, col, ok := g.cursorCell(); ok {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			g.universe.ToggleCell(row, col)
			g.dirty = true
		case inpututil.IsKeyJustPressed(ebiten.KeyG):
			g.universe.InsertGlider(row, col)
			g.dirty = true
		case inpututil.IsKeyJustPressed(ebiten.KeyP):
			g.universe.InsertPulsar(row, col)
			g.dirty = true
		}
	}

	if g.dirty {
		fillRGBA(g.pixels, g.universe.Cells(), g.opts.On, g.opts.Off)
		g.dirty = false
	}

	g.frames++
	due := g.frames*g.opts.TickRate >= ebiten.TPS()
	if (!g.paused && due) || g.tickOnce {
		g.universe.Tick()
		patchRGBA(g.pixels, g.universe.Cells(), g.universe.Diff(), g.opts.On, g.opts.Off)
		g.tickOnce = false
		g.frames = 0
	}
	return nil
}

// Draw renders the current universe.
func (g *Game) Draw(screen *ebiten.Image) {
	g.image.WritePixels(g.pixels)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.image, op)

	if !g.hideHUD {
		text.Draw(screen, hudText(g.universe, g.paused), basicfont.Face7x13, 6, 16, color.White)
		text.Draw(screen, hudHelp, basicfont.Face7x13, 6, 32, color.White)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width * g.opts.Scale, g.opts.Height * g.opts.Scale
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(opts.Width*g.opts.Scale, opts.Height*g.opts.Scale)
	ebiten.SetWindowTitle("life")
	return ebiten.RunGame(g)
}
