package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	guesses map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings. Each shape
// is named by its own key letter.
func NewKeyMapper() *KeyMapper {
	guesses := make(map[string]core.Action)
	for _, a := range []core.Action{
		core.ActionGuessRectangle, core.ActionGuessCircle, core.ActionGuessTriangle,
		core.ActionGuessTrapezoid, core.ActionGuessPentagon, core.ActionGuessHexagon,
	} {
		k, _ := shapes.FromAction(a)
		guesses[string(k.Key())] = a
	}
	return &KeyMapper{guesses: guesses}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	}

	if a, ok := km.guesses[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
