package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the 50Hz logic clock the
// shape games are tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMillis returns the length of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 20
	}
	return 1000 / float64(c.TickRate)
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// NoticeKind classifies a notice for styling and logging.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeGood
	NoticeBad
	NoticeLevel
	NoticeOver
)

// String returns the notice kind name used in logs.
func (k NoticeKind) String() string {
	switch k {
	case NoticeGood:
		return "good"
	case NoticeBad:
		return "bad"
	case NoticeLevel:
		return "level"
	case NoticeOver:
		return "over"
	default:
		return "info"
	}
}

// Notice is a human-readable report of something that happened during a tick.
type Notice struct {
	Kind NoticeKind
	Text string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}

// RunStats summarizes a finished game for persistence.
type RunStats struct {
	Score     int
	Level     int
	Hits      int
	Misses    int
	ElapsedMs int64
	Reason    string
}
