// Package strike adapts the Shape Strike engine to the arcade platform:
// shapes fall, a prompt names one of them, and the player shoots the match.
package strike

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/games/strike/engine"
	"github.com/vovakirdan/shape-arcade/internal/registry"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// ID is the registry and score-store identifier.
const ID = "strike"

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerTopChar  = '▲'
	ProjectileChar = '║'
)

// Game implements registry.Game for Shape Strike.
type Game struct {
	eng     *engine.Engine
	runtime core.RuntimeConfig
	paused  bool
	notice  core.Notice // Last thing that happened, shown on the status line
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	variant          config.StrikeVariant
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to the loaded config.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetVariant picks the classic or mixed rule set.
func SetVariant(name string) {
	v, err := config.ParseVariant(name)
	if err != nil {
		v = ""
	}
	variant = v
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// New creates a Shape Strike game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shape Strike"
}

// Controls describes the key bindings.
func (g *Game) Controls() string {
	return "←/→ move, space fire, r c t y p h name the shape"
}

// LoadConfig resolves the config this game will run with: file or
// embedded defaults, then the variant, then the difficulty.
func LoadConfig() (config.StrikeConfig, error) {
	cfg, err := config.LoadStrike(configPath)
	if err != nil {
		return cfg, err
	}
	return withPresets(cfg), nil
}

func withPresets(cfg config.StrikeConfig) config.StrikeConfig {
	config.ApplyStrikeVariant(&cfg, variant)
	config.ApplyStrikeDifficulty(&cfg, difficultyPreset)
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.notice = core.Notice{Text: "Get ready..."}

	// A config that cannot load falls back to the defaults, still under the
	// chosen variant and difficulty.
	cfg, err := LoadConfig()
	if err != nil {
		cfg = withPresets(config.DefaultStrikeConfig())
	}

	eng, err := engine.New(cfg, shapes.NewSource(runtime.Seed))
	if err != nil {
		eng, _ = engine.New(withPresets(config.DefaultStrikeConfig()), shapes.NewSource(runtime.Seed))
	}
	g.eng = eng
}

// Step advances the game by one tick.
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

	events := g.eng.Step(g.runtime.TickMillis(), Inputs(in))
	notices := shapes.Notices(events)
	if n := len(notices); n > 0 {
		g.notice = notices[n-1]
	}
	return core.StepResult{State: g.State(), Notices: notices}
}

// Inputs maps platform actions to engine inputs, keeping their order.
// Fire becomes a press and release since terminals report no key release.
func Inputs(in core.InputFrame) []engine.Input {
	var out []engine.Input
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			out = append(out, engine.Input{Type: engine.InputLeftPressed})
		case core.ActionRight:
			out = append(out, engine.Input{Type: engine.InputRightPressed})
		case core.ActionFire:
			out = append(out,
				engine.Input{Type: engine.InputFirePressed},
				engine.Input{Type: engine.InputFireReleased},
			)
		default:
			if k, ok := shapes.FromAction(a); ok {
				out = append(out, engine.Guess(k))
			}
		}
	}
	return out
}

// End finishes the round early so it can still be recorded.
func (g *Game) End() core.StepResult {
	events := g.eng.End(shapes.EndQuit)
	return core.StepResult{State: g.State(), Notices: shapes.Notices(events)}
}

// Snapshot exposes the engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Stats summarizes the round for the run history.
func (g *Game) Stats() core.RunStats {
	return g.eng.Stats()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    g.eng.Level(),
		GameOver: g.eng.Over(),
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.eng.Snapshot()
	w, h := dst.Width(), dst.Height()

	g.drawHUD(dst, s)

	// Row 0 is the HUD and the last row the status line; the field sits
	// in a box between them.
	frame := core.NewRect(0, 1, w, h-2)
	dst.DrawBox(frame, core.ColorGray)
	field := core.NewRect(1, 2, w-2, h-4)

	for _, o := range s.Obstacles {
		r := toScreen(o.Bounds(), s, field)
		dst.FillRect(r, o.Kind.Glyph(), o.Kind.Color())
	}

	if s.Projectile.Visible {
		r := toScreen(s.Projectile.Bounds(), s, field)
		cx := r.X + r.W/2
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(cx, y, ProjectileChar, core.ColorYellow)
		}
	}

	p := toScreen(s.Player, s, field)
	dst.FillRect(p, PlayerChar, core.ColorWhite)
	dst.SetColored(p.X+p.W/2, p.Y, PlayerTopChar, core.ColorWhite)

	dst.DrawTextColored(1, h-1, g.notice.Text, noticeColor(g.notice.Kind))

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press Esc to resume")
	}
	if s.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %d  |  Enter to restart", s.Reason, s.Score))
	}
}

func (g *Game) drawHUD(dst *core.Screen, s engine.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Level: %d ", s.Score, s.Level)
	if s.Lives >= 0 {
		left += fmt.Sprintf(" Lives: %d ", s.Lives)
	}
	dst.DrawText(0, 0, left)

	if !s.HasTarget {
		return
	}
	secs := int(math.Ceil(s.PromptRemainingMs / 1000))
	target := fmt.Sprintf(" Find: %c %s (%ds) ", s.Target.Glyph(), s.Target, secs)
	dst.DrawTextColored(dst.Width()-len([]rune(target)), 0, target, s.Target.Color())
}

// toScreen maps a rectangle in field units into the screen area, keeping
// at least one cell and never leaving the area.
func toScreen(r core.RectF, s engine.Snapshot, area core.Rect) core.Rect {
	x := area.X + core.Scale(r.X, s.FieldW, area.W)
	y := area.Y + core.Scale(r.Y, s.FieldH, area.H)
	w := max(core.Scale(r.W, s.FieldW, area.W), 1)
	h := max(core.Scale(r.H, s.FieldH, area.H), 1)
	return core.NewRect(x, y, w, h).Clip(area)
}

func noticeColor(k core.NoticeKind) core.Color {
	switch k {
	case core.NoticeGood:
		return core.ColorGreen
	case core.NoticeBad, core.NoticeOver:
		return core.ColorRed
	case core.NoticeLevel:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// drawCenteredMessage draws a box with a title and subtitle in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
