package constants

import "time"

// Tick loop timing
const (
	// TickInterval is the fixed delay between engine ticks
	TickInterval = 20 * time.Millisecond

	// MinTickInterval bounds the -tick flag
	MinTickInterval = time.Millisecond
)

// Game over presentation
const (
	// GameOverTextDuration is how long the final score banner stays up
	GameOverTextDuration = time.Second

	// CelebrationInterval is the period of the score/happy alternation
	CelebrationInterval = time.Second
)

// Frontend names accepted by -frontend and the config file
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)
