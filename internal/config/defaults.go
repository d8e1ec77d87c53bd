package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Universe: UniverseConfig{
			Width:  64,
			Height: 64,
			Seed:   0,
		},
		Simulation: SimulationConfig{
			TickRate:       10,
			MaxGenerations: 1000,
			StopWhenStable: true,
		},
		Render: RenderConfig{
			LiveRune:    "█",
			DeadRune:    " ",
			LiveColor:   "bright_green",
			CursorColor: "yellow",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
