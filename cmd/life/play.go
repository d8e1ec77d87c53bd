package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/gui"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var (
	flagPlayPattern string
	flagGUI         bool
	flagScale       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive board",
	Long: `Open a board sized to the terminal and start a random soup, or a
catalog pattern with --pattern.

Controls:
  Space        - Run/pause
  N            - Step one generation
  Arrows/HJKL  - Move cursor
  T/Enter      - Toggle cell (or click it)
  G / P        - Insert glider / pulsar at the cursor
  R / C        - Randomize / clear
  + / -        - Faster / slower
  Ctrl+S       - Save a screenshot to ~/.life/screenshots
  Q/Ctrl+C     - Quit

Resizing the terminal resizes the universe and empties it.

Examples:
  life play
  life play --pattern pulsar --fps 4
  life play --seed 42
  life play --gui --scale 8   # requires a build with -tags ebiten`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayPattern, "pattern", "", "Start from a catalog pattern instead of a random soup")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal board")
	playCmd.Flags().IntVar(&flagScale, "scale", 6, "Pixels per cell in the window")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagPlayPattern != "" && !registry.Exists(flagPlayPattern) {
		return fmt.Errorf("unknown pattern %q (run 'life patterns' to list them)", flagPlayPattern)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagGUI {
		opts := gui.DefaultOptions()
		opts.Width = cfg.Universe.Width
		opts.Height = cfg.Universe.Height
		opts.Scale = flagScale
		opts.TickRate = cfg.Simulation.TickRate
		opts.Seed = cfg.Universe.Seed
		opts.Pattern = flagPlayPattern
		if c, ok := core.ParseColor(cfg.Render.LiveColor); ok {
			opts.On = guiColor(c, opts.On)
		}
		if err := gui.Run(opts); err != nil {
			if errors.Is(err, gui.ErrUnavailable) {
				return fmt.Errorf("%w; use 'life play' without --gui", err)
			}
			return err
		}
		return nil
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Simulation.TickRate,
			Seed:     cfg.Universe.Seed,
		},
		Render:  cfg.Render,
		Pattern: flagPlayPattern,
	})
}

// guiColor maps terminal colors onto window colors.
func guiColor(c core.Color, fallback color.RGBA) color.RGBA {
	switch c {
	case core.ColorRed:
		return color.RGBA{R: 0xd7, G: 0x30, B: 0x30, A: 0xff}
	case core.ColorBrightGreen:
		return color.RGBA{R: 0x5f, G: 0xff, B: 0x5f, A: 0xff}
	case core.ColorGreen:
		return color.RGBA{R: 0x30, G: 0xb0, B: 0x30, A: 0xff}
	case core.ColorYellow, core.ColorBrightYellow:
		return color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	case core.ColorBlue:
		return color.RGBA{R: 0x30, G: 0x60, B: 0xff, A: 0xff}
	case core.ColorMagenta:
		return color.RGBA{R: 0xd0, G: 0x40, B: 0xd0, A: 0xff}
	case core.ColorCyan:
		return color.RGBA{R: 0x30, G: 0xd0, B: 0xd0, A: 0xff}
	case core.ColorWhite, core.ColorDefault:
		return color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	case core.ColorGray:
		return color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	}
	return fallback
}
