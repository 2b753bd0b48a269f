package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default sky blue
	MascotCelebrating                      // Gold, open wings: strong streak
	MascotNew                              // Egg: nothing answered yet
)

const mascotIdle = `  ,_,
 (o,o)
 {"+"}
 -"-"-`

const mascotCelebrating = ` \,_,/
 (^,^)
 {"×"}
 -"-"-`

const mascotNew = `  ___
 / ? \
| ± ÷ |
 \___/`

// celebrateStreak is the current streak at which the mascot celebrates.
const celebrateStreak = 5

// VariantFor picks the mascot for the player's state.
func VariantFor(s session.GameState) MascotVariant {
	switch {
	case s.QuestionsAnswered == 0:
		return MascotNew
	case s.CurrentStreak >= celebrateStreak:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Star
	case MascotNew:
		art = mascotNew
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// renderMascot renders the mascot centered at the content width.
func renderMascot(s session.GameState, cw int) string {
	return theme.Centered(cw).Render(RenderMascot(VariantFor(s)))
}
