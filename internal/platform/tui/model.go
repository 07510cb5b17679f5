package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/registry"
	"github.com/vovakirdan/shape-arcade/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
// Key presses are collected into an input frame and handed to the game on
// the next tick, so every game call happens on the Update goroutine.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	session    bool // Hosted by a SessionModel; going back does not end the program
	round      int
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the finished round has been saved
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets where game notices and storage failures are logged.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// inSession marks the model as one of several games played in a single
// program. round must differ from that of every earlier game.
func inSession(round int) Option {
	return func(m *Model) {
		m.session = true
		m.round = round
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store plays without saving scores.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.round)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games scale to the screen, so a resize keeps the round going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Round != m.round {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.endRound()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.endRound()
		m.backToMenu = true
		if m.session {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionConfirm && m.gameState.GameOver:
		m.inputFrame.Set(core.ActionRestart)

	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		m.logger.Info("round restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.round)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logNotices(result.Notices)

	if m.gameState.GameOver {
		m.record()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.round)
}

// endRound stops a round that is still running so that it gets recorded.
func (m *Model) endRound() {
	if !m.gameState.GameOver {
		ender, ok := m.game.(registry.Ender)
		if !ok {
			return
		}
		result := ender.End()
		m.gameState = result.State
		m.logNotices(result.Notices)
	}
	m.record()
}

// record saves the finished round once. Failures are logged, never fatal.
func (m *Model) record() {
	if m.recorded {
		return
	}
	m.recorded = true

	id := m.game.ID()
	if r, ok := m.game.(registry.Recorder); ok {
		stats := r.Stats()
		m.logger.Info("round over",
			"game", id, "score", stats.Score, "level", stats.Level,
			"hits", stats.Hits, "misses", stats.Misses, "reason", stats.Reason)
		if m.store != nil {
			if _, err := m.store.SaveRun(id, m.config.Seed, stats); err != nil {
				m.logger.Warn("could not save run", "game", id, "error", err)
			}
		}
		return
	}

	m.logger.Info("round over", "game", id, "score", m.gameState.Score)
	if m.store != nil && m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(id, m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", id, "error", err)
		}
	}
}

func (m *Model) logNotices(notices []core.Notice) {
	for _, n := range notices {
		m.logger.Debug(n.Text, "game", m.game.ID(), "kind", n.Kind, "score", m.gameState.Score)
	}
}

// saveScreenshot writes the current frame as plain text under ~/.shapes/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".shapes", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to leave the arcade.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or goes back.
// It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) (backToMenu bool, err error) {
	p := tea.NewProgram(NewModel(game, store, cfg, opts...), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
