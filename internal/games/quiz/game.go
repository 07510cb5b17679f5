// Package quiz adapts the Shape Quiz engine to the arcade platform.
package quiz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/games/quiz/engine"
	"github.com/vovakirdan/shape-arcade/internal/registry"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// ID is the registry and score-store identifier.
const ID = "quiz"

// Game implements registry.Game for Shape Quiz.
type Game struct {
	eng     *engine.Engine
	runtime core.RuntimeConfig
	paused  bool
	notice  core.Notice
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the loaded config.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// New creates a Shape Quiz game.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string {
	return ID
}

func (g *Game) Title() string {
	return "Shape Quiz"
}

// Controls describes the key bindings.
func (g *Game) Controls() string {
	return "r c t y p h name the shape before time runs out"
}

// LoadConfig resolves the quiz config from file or defaults, then the difficulty.
func LoadConfig() (config.QuizConfig, error) {
	cfg, err := config.LoadQuiz(configPath)
	if err != nil {
		return cfg, err
	}
	return withDifficulty(cfg), nil
}

func withDifficulty(cfg config.QuizConfig) config.QuizConfig {
	config.ApplyQuizDifficulty(&cfg, difficultyPreset)
	return cfg
}

// Reset initializes or restarts the quiz.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.notice = core.Notice{Text: "What shape is this?"}

	cfg, err := LoadConfig()
	if err != nil {
		cfg = withDifficulty(config.DefaultQuizConfig())
	}
	eng, err := engine.New(cfg, shapes.NewSource(runtime.Seed))
	if err != nil {
		eng, _ = engine.New(withDifficulty(config.DefaultQuizConfig()), shapes.NewSource(runtime.Seed))
	}
	g.eng = eng
}

// Step applies guesses in order, then runs the countdown for one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []shapes.Event
	for _, a := range in.Actions() {
		if k, ok := shapes.FromAction(a); ok {
			events = append(events, g.eng.Answer(k)...)
		}
	}
	events = append(events, g.eng.Tick(g.runtime.TickMillis())...)

	notices := shapes.Notices(events)
	if n := len(notices); n > 0 {
		g.notice = notices[n-1]
		// Keep the verdict on screen rather than the prompt that follows it.
		if _, ok := events[n-1].(shapes.NewPromptEvent); ok && n > 1 {
			g.notice = notices[n-2]
		}
	}
	return core.StepResult{State: g.State(), Notices: notices}
}

// End finishes the quiz early so it can still be recorded.
func (g *Game) End() core.StepResult {
	return core.StepResult{State: g.State(), Notices: shapes.Notices(g.eng.End(shapes.EndQuit))}
}

// Snapshot exposes the engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Stats summarizes the quiz for the run history.
func (g *Game) Stats() core.RunStats {
	return g.eng.Stats()
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    1,
		GameOver: g.eng.Over(),
		Paused:   g.paused,
	}
}

// Render draws the shape in the middle of the screen with the countdown
// above it and the answer keys below.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.eng.Snapshot()
	w, h := dst.Width(), dst.Height()

	hud := fmt.Sprintf(" Score: %d   Time left: %.1fs   Lives: %d ", s.Score, s.RemainingMs/1000, s.Lives)
	dst.DrawTextCentered(0, hud, core.ColorDefault)
	dst.DrawHLine(0, 1, w, '─', core.ColorGray)
	g.drawTimer(dst, s, w)

	// Terminal cells are about twice as tall as wide.
	area := core.NewRect(0, 3, w, h-7)
	size := min(area.H, area.W/2)
	shape := core.NewRect((w-size*2)/2, area.Y+(area.H-size)/2, size*2, size)
	drawShape(dst, s.Target, shape)

	dst.DrawTextCentered(h-3, choiceLine(s.Choices), core.ColorDefault)
	dst.DrawTextCentered(h-1, g.notice.Text, noticeColor(g.notice.Kind))

	if g.paused {
		dst.DrawTextCentered(h/2, "  PAUSED  ", core.ColorYellow)
	}
	if s.GameOver {
		dst.DrawTextCentered(h/2, fmt.Sprintf("  GAME OVER: %s  Score %d  ", s.Reason, s.Score), core.ColorRed)
		dst.DrawTextCentered(h/2+1, "  Enter to play again  ", core.ColorDefault)
	}
}

// drawTimer draws a bar that shrinks with the countdown.
func (g *Game) drawTimer(dst *core.Screen, s engine.Snapshot, w int) {
	if s.LimitMs <= 0 {
		return
	}
	filled := core.Scale(s.RemainingMs, int(s.LimitMs), w)
	color := core.ColorGreen
	if s.RemainingMs*3 < float64(s.LimitMs) {
		color = core.ColorRed
	}
	dst.DrawHLine(0, 2, filled, '▬', color)
}

// drawShape fills the cells of r whose centers fall inside the outline of k.
func drawShape(dst *core.Screen, k shapes.Kind, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		v := (float64(y-r.Y)+0.5)/float64(r.H)*2 - 1
		for x := r.X; x < r.Right(); x++ {
			u := (float64(x-r.X)+0.5)/float64(r.W)*2 - 1
			if shapes.Contains(k, u, v) {
				dst.SetColored(x, y, '█', k.Color())
			}
		}
	}
}

func choiceLine(choices []shapes.Kind) string {
	parts := make([]string, len(choices))
	for i, k := range choices {
		parts[i] = fmt.Sprintf("[%c] %s", k.Key(), k)
	}
	return strings.Join(parts, "  ")
}

func noticeColor(k core.NoticeKind) core.Color {
	switch k {
	case core.NoticeGood:
		return core.ColorGreen
	case core.NoticeBad, core.NoticeOver:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}
