package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m Menu, keys ...tea.KeyMsg) Menu {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Menu)
	}
	return m
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuSelect(t *testing.T) {
	m := press(NewMenu("Photo", []string{"From Photos", "Take Picture", "Cancel"}, 2), down, enter)
	assert.Equal(t, 1, m.Chosen())
	assert.Empty(t, m.View())
}

func TestMenuCursorClamps(t *testing.T) {
	m := press(NewMenu("Photo", []string{"a", "b"}, -1), up, down, down, down, enter)
	assert.Equal(t, 1, m.Chosen())
}

func TestMenuCancelItemAndEscape(t *testing.T) {
	m := press(NewMenu("Photo", []string{"From Photos", "Take Picture", "Cancel"}, 2), down, down, enter)
	assert.Equal(t, -1, m.Chosen())

	m = press(NewMenu("Photo", []string{"x"}, -1), esc)
	assert.Equal(t, -1, m.Chosen())
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu("Library", nil, -1)
	assert.Contains(t, m.View(), "nothing to choose")
	m = press(m, enter)
	assert.Equal(t, -1, m.Chosen())
}

func TestMenuScrolls(t *testing.T) {
	items := make([]string, 30)
	for i := range items {
		items[i] = strings.Repeat("x", i+1)
	}
	m := NewMenu("Library", items, -1)
	m, _ = func() (Menu, tea.Cmd) {
		next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 9})
		return next.(Menu), cmd
	}()
	for i := 0; i < 20; i++ {
		m = press(m, down)
	}
	view := m.View()
	assert.Contains(t, view, "21/30")
	assert.NotContains(t, view, "› x\n")
}

func TestRenderSummaryAndAlert(t *testing.T) {
	out := RenderSummary([]SummaryRow{{Label: "Format", Value: "jpeg"}, {Label: "Size", Value: "400x300"}})
	assert.Contains(t, out, "Format")
	assert.Contains(t, out, "400x300")

	alert := RenderAlert("Camera Error", "Camera not available in Simulator")
	assert.Contains(t, alert, "Camera Error")
	assert.Contains(t, alert, "Simulator")
}
