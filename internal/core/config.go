package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed; 0 means the platform layer picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
	}
}

// GameState is the externally visible game status, returned by Game.State().
// There is no game-over flag: self-collision resets the snake in place and
// the session runs until the player quits.
type GameState struct {
	Length int // Current snake length (the only score)
	Apples int // Apples eaten since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
