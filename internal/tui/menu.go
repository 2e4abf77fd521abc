package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Menu is a single-choice list: the source action sheet and the library
// picker are both menus. Chosen is -1 when the user backed out.
type Menu struct {
	title  string
	items  []string
	cancel int
	cursor int
	offset int
	height int
	chosen int
	done   bool
}

// NewMenu builds a menu. cancel is the index of an item that means "back
// out", or -1 if there is none.
func NewMenu(title string, items []string, cancel int) Menu {
	return Menu{title: title, items: items, cancel: cancel, chosen: -1, height: 10}
}

func (m Menu) Chosen() int { return m.chosen }

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.items) > 0 && m.cursor != m.cancel {
				m.chosen = m.cursor
			}
			m.done = true
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
		m.scroll()
		return m, nil
	case tea.WindowSizeMsg:
		m.height = msg.Height - 4
		if m.height < 3 {
			m.height = 3
		}
		m.scroll()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Menu) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m Menu) View() string {
	if m.done {
		return ""
	}

	lines := []string{titleStyle.Render(m.title)}
	if len(m.items) == 0 {
		lines = append(lines, dimStyle.Render("  (nothing to choose)"))
	}
	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		switch {
		case i == m.cursor:
			lines = append(lines, cursorStyle.Render("› "+item))
		case i == m.cancel:
			lines = append(lines, dimStyle.Render("  "+item))
		default:
			lines = append(lines, itemStyle.Render("  "+item))
		}
	}
	if len(m.items) > m.height {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.items))))
	}
	lines = append(lines, dimStyle.Render("↑/↓ move • enter select • esc cancel"))
	return strings.Join(lines, "\n")
}

// RunMenu shows the menu and blocks until the user picks or backs out.
func RunMenu(menu Menu, opts ...tea.ProgramOption) (int, error) {
	final, err := tea.NewProgram(menu, opts...).Run()
	if err != nil {
		return -1, err
	}
	m, ok := final.(Menu)
	if !ok {
		return -1, nil
	}
	return m.Chosen(), nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	itemStyle   = lipgloss.NewStyle().Foreground(ColorInk)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccentAlt)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorDim)
)
