package engine

// Autopilot picks the inputs for one tick that chase and shoot the lowest
// obstacle matching the current prompt. It never guesses by key.
// Headless simulations and demos use it in place of a player.
func Autopilot(s Snapshot) []Input {
	if s.GameOver || !s.HasTarget {
		return nil
	}

	best := -1
	for i, o := range s.Obstacles {
		if o.Kind != s.Target || o.Y+float64(o.H) > s.Player.Y {
			continue
		}
		if best < 0 || o.Y > s.Obstacles[best].Y {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	// The shot leaves centered on the player, the way Fire places it.
	o := s.Obstacles[best]
	left := s.Player.X + float64(int(s.Player.W)/2-s.Projectile.W/2)
	right := left + float64(s.Projectile.W)
	switch {
	case right <= float64(o.X):
		return []Input{{Type: InputRightPressed}}
	case left >= float64(o.X+o.W):
		return []Input{{Type: InputLeftPressed}}
	case s.Projectile.Visible:
		return nil
	}
	return []Input{{Type: InputFirePressed}, {Type: InputFireReleased}}
}
