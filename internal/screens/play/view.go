package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathbird/internal/ui/components"
	"github.com/abhisek/mathbird/internal/ui/theme"
)

// renderQuestion renders the active question with its choices.
func (p *PlayScreen) renderQuestion(width int) string {
	state := p.game.State()
	cfg := p.game.Config()
	q := p.question

	var b strings.Builder
	b.WriteString("\n")

	bar := components.SessionProgress(state.SessionQuestionsAnswered, cfg.Session.QuestionsPerSession, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	info := fmt.Sprintf("Level %d   Score %d   Streak %d",
		state.CurrentLevel, state.Score, state.CurrentStreak)
	b.WriteString(theme.Centered(width).Foreground(theme.TextDim).Render(info))
	b.WriteString("\n\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text() + " = ?"))
	b.WriteString("\n\n")

	b.WriteString(p.choices.View(width))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter"))

	return b.String()
}

// renderFeedback renders the result of the last answer.
func (p *PlayScreen) renderFeedback(width int) string {
	out := p.outcome
	q := p.question

	var b strings.Builder
	b.WriteString("\n\n")

	if out.Answer.Correct {
		b.WriteString(theme.Centered(width).Inherit(theme.Correct).Render("Correct!"))
		b.WriteString("\n\n")

		pts := out.Answer.Points
		b.WriteString(theme.Centered(width).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("+%d points", pts.Total())))
		b.WriteString("\n")
		b.WriteString(theme.Centered(width).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("base %d · speed %d · streak %d · variety %d",
				pts.Base, pts.Time, pts.Streak, pts.Variety)))
		if out.Answer.Streak > 1 {
			b.WriteString("\n\n")
			b.WriteString(theme.Centered(width).
				Foreground(theme.Streak).
				Render(fmt.Sprintf("%d in a row!", out.Answer.Streak)))
		}
	} else {
		b.WriteString(theme.Centered(width).Inherit(theme.Incorrect).Render("Not quite"))
		b.WriteString("\n\n")
		b.WriteString(theme.Centered(width).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s = %d", q.Text(), out.Answer.CorrectAnswer)))
	}

	b.WriteString("\n\n")
	b.WriteString(p.choices.View(width))
	b.WriteString("\n\n")

	hint := "Press any key to continue..."
	if out.Session != nil {
		hint = "Session complete! Press any key to see how you did."
	}
	b.WriteString(theme.Centered(width).Inherit(theme.Hint).Render(hint))

	return b.String()
}

// renderQuitConfirm renders the leave confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this session?"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width).
		Foreground(theme.TextDim).
		Render("Your answers so far are saved."))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return theme.Centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Thinking of a question...")
}

func renderError(width int, errMsg string) string {
	return theme.Centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
