package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt the viewport to the screen size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the desktop frontend)
	ScreenH  int   // Screen height in characters (or pixels)
	TickRate int   // Frames per second requested from the frame driver (default 60)
	Seed     int64 // RNG seed, 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the HUD-level view of a game, shared with the UI collaborators.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	Lives    int  // Remaining lives
	Running  bool // Whether a game is in progress
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}
