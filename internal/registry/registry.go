// Package registry lets games announce themselves from init() so the
// platform and CLI can find them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic:
// no terminal, no clock, no storage.
type Game interface {
	// ID is the stable identifier used on the command line and in the score store.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh round for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions collected since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the round into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Describer is implemented by games that can explain their controls.
type Describer interface {
	Controls() string
}

// Recorder is implemented by games that report a summary of the round for
// the run history.
type Recorder interface {
	Stats() core.RunStats
}

// Ender is implemented by games that can be stopped before they are over,
// so that a quit still produces a finished, recordable round.
type Ender interface {
	End() core.StepResult
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Controls string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on an empty or duplicate ID, both of
// which are programming errors caught at startup.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Controls = d.Controls()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of the game with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// IDs returns the registered IDs, sorted.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}
