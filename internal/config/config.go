// Package config provides YAML-based configuration loading for the life
// hosts.
package config

// LifeConfig contains all configuration for a life session.
type LifeConfig struct {
	Universe   UniverseConfig   `yaml:"universe"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
}

// UniverseConfig defines grid dimensions and the random seed.
type UniverseConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 = time based
}

// SimulationConfig defines how fast and how long a universe runs.
type SimulationConfig struct {
	TickRate       int  `yaml:"tick_rate"`       // generations per second
	MaxGenerations int  `yaml:"max_generations"` // headless run limit
	StopWhenStable bool `yaml:"stop_when_stable"`
}

// RenderConfig defines how cells are drawn.
type RenderConfig struct {
	LiveRune    string `yaml:"live_rune"`
	DeadRune    string `yaml:"dead_rune"`
	LiveColor   string `yaml:"live_color"`
	CursorColor string `yaml:"cursor_color"`
}

// Limits applied by Validate.
const (
	MaxTickRate = 60
	MaxSize     = 1024
)

// Validate clamps values that would make the config unusable and fills
// missing render settings from the defaults.
func (c *LifeConfig) Validate() {
	def := DefaultLifeConfig()

	if c.Universe.Width <= 0 {
		c.Universe.Width = def.Universe.Width
	}
	if c.Universe.Height <= 0 {
		c.Universe.Height = def.Universe.Height
	}
	c.Universe.Width = min(c.Universe.Width, MaxSize)
	c.Universe.Height = min(c.Universe.Height, MaxSize)

	if c.Simulation.TickRate <= 0 {
		c.Simulation.TickRate = def.Simulation.TickRate
	}
	c.Simulation.TickRate = min(c.Simulation.TickRate, MaxTickRate)
	if c.Simulation.MaxGenerations <= 0 {
		c.Simulation.MaxGenerations = def.Simulation.MaxGenerations
	}

	if c.Render.LiveRune == "" {
		c.Render.LiveRune = def.Render.LiveRune
	}
	if c.Render.DeadRune == "" {
		c.Render.DeadRune = def.Render.DeadRune
	}
	if c.Render.LiveColor == "" {
		c.Render.LiveColor = def.Render.LiveColor
	}
	if c.Render.CursorColor == "" {
		c.Render.CursorColor = def.Render.CursorColor
	}
}

// LiveRune returns the first rune of Render.LiveRune.
func (c LifeConfig) LiveRune() rune { return firstRune(c.Render.LiveRune, '█') }

// DeadRune returns the first rune of Render.DeadRune.
func (c LifeConfig) DeadRune() rune { return firstRune(c.Render.DeadRune, ' ') }

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
