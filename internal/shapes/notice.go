package shapes

import (
	"fmt"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

// Describe turns an event into the line shown in the HUD and written to the log.
func Describe(ev Event) core.Notice {
	switch e := ev.(type) {
	case CorrectEvent:
		if e.ByKey || e.Award == 0 {
			return core.Notice{Kind: core.NoticeGood, Text: fmt.Sprintf("Correct! It's a %s", e.Shape)}
		}
		return core.Notice{Kind: core.NoticeGood, Text: fmt.Sprintf("Hit the %s! +%d", e.Shape, e.Award)}
	case IncorrectEvent:
		text := fmt.Sprintf("That's a %s, not a %s", e.Shape, e.Target)
		if e.LivesLeft >= 0 {
			text += fmt.Sprintf(" (%d lives left)", e.LivesLeft)
		}
		return core.Notice{Kind: core.NoticeBad, Text: text}
	case LevelUpEvent:
		return core.Notice{Kind: core.NoticeLevel, Text: fmt.Sprintf("Level %d!", e.Level)}
	case NewPromptEvent:
		return core.Notice{Kind: core.NoticeInfo, Text: fmt.Sprintf("Find the %s", e.Name())}
	case GameOverEvent:
		return core.Notice{Kind: core.NoticeOver, Text: fmt.Sprintf("%s! Final score: %d", e.Reason, e.Score)}
	default:
		return core.Notice{Kind: core.NoticeInfo, Text: fmt.Sprintf("%v", ev)}
	}
}

// Notices describes a batch of events, keeping their order.
func Notices(events []Event) []core.Notice {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Notice, len(events))
	for i, ev := range events {
		out[i] = Describe(ev)
	}
	return out
}
