package shapes

// Event is something a shape engine reports to its presentation layer.
// Engines never block on events; the caller decides how to show them.
type Event interface {
	shapeEvent()
}

// CorrectEvent is emitted when the prompted shape is struck or named.
type CorrectEvent struct {
	Shape Kind
	Award int  // Points added by this judgment (0 for key guesses)
	Score int  // Score after the award
	ByKey bool // Judged from a key guess rather than a projectile hit
}

func (CorrectEvent) shapeEvent() {}

// IncorrectEvent is emitted when a shape other than the target is struck or named.
type IncorrectEvent struct {
	Shape     Kind // What was struck or guessed
	Target    Kind // What the prompt asked for
	ByKey     bool
	LivesLeft int // -1 when lives are not tracked
}

func (IncorrectEvent) shapeEvent() {}

// LevelUpEvent is emitted when the score crosses the current level's threshold.
type LevelUpEvent struct {
	Level int // New level, 1-based
}

func (LevelUpEvent) shapeEvent() {}

// NewPromptEvent is emitted whenever a new target shape is issued.
type NewPromptEvent struct {
	Target Kind
	Index  int // Position in the level's prompt sequence
}

func (NewPromptEvent) shapeEvent() {}

// Name returns the prompted shape's display name.
func (e NewPromptEvent) Name() string {
	return e.Target.String()
}

// GameOverEvent is the terminal event. It is emitted exactly once.
type GameOverEvent struct {
	Reason EndReason
	Score  int
}

func (GameOverEvent) shapeEvent() {}

// EndReason describes why a game ended.
type EndReason int

const (
	EndQuit    EndReason = iota // Player left the game
	EndNoLives                  // Too many wrong answers
	EndTimeUp                   // Countdown expired
)

func (r EndReason) String() string {
	switch r {
	case EndQuit:
		return "Game ended"
	case EndNoLives:
		return "No lives left"
	case EndTimeUp:
		return "Time's up"
	default:
		return "Unknown"
	}
}
