package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/ui/theme"
)

const titleFull = `█▀▄▀█ ▄▀█ ▀█▀ █ █ █▄▄ █ █▀█ █▀▄
█ ▀ █ █▀█  █  █▀█ █▄█ █ █▀▄ █▄▀`

const titleCompact = "M · A · T · H · B · I · R · D"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return theme.Centered(cw).Render(style.Render(art))
}

// renderStatsBar renders level, stars, lifetime score and best streak.
func renderStatsBar(s session.GameState, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	starStyle := lipgloss.NewStyle().Foreground(theme.Star).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Streak).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("L%d", s.CurrentLevel)),
			starStyle.Render(fmt.Sprintf("★%d", s.Stars)),
			scoreStyle.Render(fmt.Sprintf("%d pts", s.LifetimeScore)),
			streakStyle.Render(fmt.Sprintf("best %d", s.MaxStreak)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", s.CurrentLevel)),
			starStyle.Render(fmt.Sprintf("★ %d", s.Stars)),
			scoreStyle.Render(fmt.Sprintf("%d PTS", s.LifetimeScore)),
			streakStyle.Render(fmt.Sprintf("BEST STREAK %d", s.MaxStreak)),
		)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1)

	if s.SessionQuestionsAnswered > 0 {
		resume := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("session in progress: %d answered", s.SessionQuestionsAnswered))
		return box.Render(stats + "\n" + resume)
	}
	return box.Render(stats)
}
