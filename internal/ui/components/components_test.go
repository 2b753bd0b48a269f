package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoiceDirectPick(t *testing.T) {
	mc := NewMultiChoice([]int{4, 7, 9, 12}, 2)

	mc, _ = mc.Update(keyPress('3'))

	assert.True(t, mc.Submitted)
	assert.True(t, mc.IsCorrect())
	v, ok := mc.Chosen()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestMultiChoiceArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]int{4, 7, 9, 12}, 2)

	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown)) // clamped
	assert.Equal(t, 3, mc.Selected)

	mc, _ = mc.Update(specialKey(tea.KeyUp))
	mc, _ = mc.Update(specialKey(tea.KeyEnter))

	v, ok := mc.Chosen()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestMultiChoiceIgnoresInputAfterSubmit(t *testing.T) {
	mc := NewMultiChoice([]int{4, 7, 9, 12}, 2)
	mc, _ = mc.Update(keyPress('1'))
	mc, _ = mc.Update(keyPress('3'))

	v, _ := mc.Chosen()
	assert.Equal(t, 4, v)
	assert.False(t, mc.IsCorrect())
}

func TestMultiChoiceNotSubmitted(t *testing.T) {
	mc := NewMultiChoice([]int{4, 7, 9, 12}, 2)
	mc, _ = mc.Update(keyPress('x'))

	_, ok := mc.Chosen()
	assert.False(t, ok)
	assert.Contains(t, mc.View(40), "12")
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd { picked = "play"; return nil }},
		{Label: "SOON", Disabled: true},
		{Label: "EXIT", Action: func() tea.Cmd { picked = "exit"; return nil }},
	})

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Selected)

	m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "exit", picked)
	assert.Equal(t, []string{"PLAY", "SOON", "EXIT"}, m.Labels())
}

func TestSessionProgress(t *testing.T) {
	bar := SessionProgress(5, 20, 40)
	assert.InDelta(t, 0.25, bar.Percent, 1e-9)
	view := bar.View()
	assert.Contains(t, view, "Q 5/20")
	assert.Equal(t, 40, lipgloss.Width(view))

	assert.Zero(t, SessionProgress(0, 0, 40).Percent)
}
