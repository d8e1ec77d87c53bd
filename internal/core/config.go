package core

// RuntimeConfig contains configuration passed to a host session at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Generations per second while running
	Seed     int64 // RNG seed for the initial randomization (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time
	}
}

// SimState is the host-visible summary of a simulation session.
type SimState struct {
	Generation uint64
	Living     int
	Running    bool
	Stable     bool // Last tick produced an empty diff
}
