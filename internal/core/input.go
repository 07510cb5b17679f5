package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionFire           // Space; terminals report no key release, so this is press+release
	ActionConfirm        // Enter
	ActionBack           // Escape, B
	ActionRestart        // Enter after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // Escape during play

	// Shape guesses, one per shape kind, in shapes.All order.
	ActionGuessRectangle // R
	ActionGuessCircle    // C
	ActionGuessTriangle  // T
	ActionGuessTrapezoid // Y
	ActionGuessPentagon  // P
	ActionGuessHexagon   // H
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionLeft:           "Left",
	ActionRight:          "Right",
	ActionFire:           "Fire",
	ActionConfirm:        "Confirm",
	ActionBack:           "Back",
	ActionRestart:        "Restart",
	ActionQuit:           "Quit",
	ActionPause:          "Pause",
	ActionGuessRectangle: "GuessRectangle",
	ActionGuessCircle:    "GuessCircle",
	ActionGuessTriangle:  "GuessTriangle",
	ActionGuessTrapezoid: "GuessTrapezoid",
	ActionGuessPentagon:  "GuessPentagon",
	ActionGuessHexagon:   "GuessHexagon",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsGuess reports whether the action names a shape.
func (a Action) IsGuess() bool {
	return a >= ActionGuessRectangle && a <= ActionGuessHexagon
}

// InputFrame holds the actions triggered during one simulation tick,
// in the order they arrived. Order matters: moving then firing launches
// the projectile from the new position.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions of this frame in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets the frame for the next tick, reusing its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
