package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathbird/internal/ui/theme"
)

// MultiChoice is a numeric multiple-choice selector.
type MultiChoice struct {
	Choices      []int
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a selector over choices. correctIndex is only used
// to colour the options once an answer is submitted.
func NewMultiChoice(choices []int, correctIndex int) MultiChoice {
	return MultiChoice{
		Choices:      choices,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles navigation, direct picks and Enter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case key.Matches(kmsg, Keys.Down):
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
		return m, nil
	case key.Matches(kmsg, Keys.Select):
		m.submit(m.Selected)
		return m, nil
	}

	for i, b := range Keys.Pick {
		if i < len(m.Choices) && key.Matches(kmsg, b) {
			m.Selected = i
			m.submit(i)
			break
		}
	}
	return m, nil
}

func (m *MultiChoice) submit(i int) {
	if i < 0 || i >= len(m.Choices) {
		return
	}
	m.Submitted = true
	m.ChosenIndex = i
}

// Chosen returns the submitted value. ok is false until an answer is
// submitted.
func (m MultiChoice) Chosen() (value int, ok bool) {
	if !m.Submitted {
		return 0, false
	}
	return m.Choices[m.ChosenIndex], true
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// View renders the options as a centered block.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, choice := range m.Choices {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, choice)

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = theme.Correct
		case m.Submitted && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		if i < len(m.Choices)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
