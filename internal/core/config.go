package core

// RuntimeConfig is what a front end tells a game when it (re)starts it.
type RuntimeConfig struct {
	ScreenW  int   // view width in cells
	ScreenH  int   // view height in cells
	TickRate int   // fixed simulation ticks per second
	Seed     int64 // spawner seed; equal seeds replay identically
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second with seed 0.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// Normalized replaces non-positive sizes and rates with the defaults.
// The seed is kept as is.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// GameState is the summary a game reports after every tick.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step: the state after the tick plus
// everything that happened during it, in order.
type StepResult struct {
	State  GameState
	Events Events
}
