package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int           // Current score
	GameOver  bool          // Whether the game has ended (lost or won)
	Won       bool          // Whether the game ended with a win
	Paused    bool          // Whether the game is paused
	Level     int           // Current speed level
	FallDelay time.Duration // Current automatic fall interval
	MaxTile   int           // Highest tile value on the board
	Locks     int           // Pieces committed so far in this run
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	// Locked is true when a piece was committed to the grid during this tick.
	Locked bool
}
