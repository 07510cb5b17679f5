package engine

import (
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// Tick advances the simulation by deltaMs and returns what happened.
// Phases run in a fixed order: obstacles fall, one spawn attempt, the
// projectile moves and resolves at most one collision, the level is checked,
// then the prompt timer. After game over Tick does nothing.
func (e *Engine) Tick(deltaMs float64) []shapes.Event {
	if e.over {
		return nil
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	e.elapsed += deltaMs
	factor := deltaMs / e.cfg.StepMs

	var events []shapes.Event

	e.advanceObstacles(factor)
	e.spawn()

	events = e.advanceProjectile(factor, events)
	if e.over {
		return events
	}

	events = e.checkLevel(events)
	events = e.checkPrompt(events)
	return events
}

// advanceObstacles moves every obstacle down and drops those below the field.
func (e *Engine) advanceObstacles(factor float64) {
	dy := e.currentLevel().FallSpeed * factor
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.Y += dy
		if o.Y > float64(e.cfg.Field.Height) {
			continue
		}
		kept = append(kept, o)
	}
	e.obstacles = kept
}

// spawn attempts to add one obstacle at the top of the field.
// Placement is redrawn until it clears every existing obstacle; with
// MaxSpawnAttempts > 0 the attempt is abandoned after that many draws.
// Unbounded attempts only start when some placement can succeed.
func (e *Engine) spawn() {
	if e.rng.Float64() >= e.cfg.Obstacles.SpawnProbability {
		return
	}

	pool := e.currentLevel().Shapes
	span := max(e.cfg.Field.Width-e.cfg.Obstacles.Width, 1)
	limit := e.cfg.Obstacles.MaxSpawnAttempts
	if limit == 0 && !e.roomAtTop(span) {
		return
	}

	for attempt := 0; limit == 0 || attempt < limit; attempt++ {
		candidate := Obstacle{
			X:    e.rng.Intn(span),
			Y:    0,
			W:    e.cfg.Obstacles.Width,
			H:    e.cfg.Obstacles.Height,
			Kind: shapes.Pick(e.rng, pool),
		}
		if !e.overlapsAny(candidate) {
			e.obstacles = append(e.obstacles, candidate)
			return
		}
	}
}

// roomAtTop reports whether some spawn x in [0, span) clears every obstacle.
func (e *Engine) roomAtTop(span int) bool {
	for x := 0; x < span; x++ {
		candidate := Obstacle{X: x, W: e.cfg.Obstacles.Width, H: e.cfg.Obstacles.Height}
		if !e.overlapsAny(candidate) {
			return true
		}
	}
	return false
}

func (e *Engine) overlapsAny(candidate Obstacle) bool {
	box := candidate.Bounds()
	for _, o := range e.obstacles {
		if box.Intersects(o.Bounds()) {
			return true
		}
	}
	return false
}

// advanceProjectile moves the projectile up and resolves the first obstacle
// it overlaps, in obstacle order.
func (e *Engine) advanceProjectile(factor float64, events []shapes.Event) []shapes.Event {
	p := &e.projectile
	if !p.Visible {
		return events
	}

	p.Y -= e.cfg.Projectile.Speed * factor
	if p.Y < 0 {
		p.Visible = false
		return events
	}
	if !e.hasPrompt {
		return events
	}

	box := p.Bounds()
	for i, o := range e.obstacles {
		if !box.Intersects(o.Bounds()) {
			continue
		}
		p.Visible = false
		if o.Kind.Matches(e.Target().String()) {
			e.obstacles = append(e.obstacles[:i], e.obstacles[i+1:]...)
			award := e.cfg.Scoring.HitAward
			e.score += award
			e.hits++
			return append(events, shapes.CorrectEvent{Shape: o.Kind, Award: award, Score: e.score})
		}
		return e.wrong(events, o.Kind, false)
	}
	return events
}

// checkLevel moves to the next level once the score reaches the threshold.
// At most one level is gained per tick.
func (e *Engine) checkLevel(events []shapes.Event) []shapes.Event {
	if e.level >= len(e.cfg.Levels)-1 {
		return events
	}
	if e.score < e.currentLevel().AdvanceScore {
		return events
	}

	e.level++
	// The new level starts from the top of its own prompt sequence.
	e.hasPrompt = false
	e.promptIndex = 0
	return append(events, shapes.LevelUpEvent{Level: e.Level()})
}

// checkPrompt issues the first prompt as soon as none is active, and the
// next one whenever the current prompt has been up for the level's timeout.
func (e *Engine) checkPrompt(events []shapes.Event) []shapes.Event {
	prompts := e.currentLevel().Prompts

	switch {
	case !e.hasPrompt:
		e.promptIndex = 0
	case e.elapsed-e.lastPromptAt >= float64(e.currentLevel().PromptTimeoutMs):
		e.promptIndex = (e.promptIndex + 1) % len(prompts)
	default:
		return events
	}

	e.hasPrompt = true
	e.lastPromptAt = e.elapsed
	return append(events, shapes.NewPromptEvent{Target: prompts[e.promptIndex], Index: e.promptIndex})
}
