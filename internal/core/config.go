package core

// RuntimeConfig is handed to a game factory when a game is created.
type RuntimeConfig struct {
	ScreenW    int    // Terminal width in characters, used for map drawing
	ScreenH    int    // Terminal height in characters
	Seed       int64  // RNG seed, 0 means pick one from the clock
	ConfigPath string // Custom game config file, empty for the search path
	Difficulty string // Difficulty preset name, empty for the config's own
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the part of a game's state the platform cares about.
type GameState struct {
	Score    int  // Current score
	Turn     int  // Turns played so far
	GameOver bool // Whether the game has ended
}
