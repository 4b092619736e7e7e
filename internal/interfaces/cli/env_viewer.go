package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// envViewerModel is a read-only scrollable list of rendered lines
type envViewerModel struct {
	lines  []string
	offset int
	height int
}

func newEnvViewerModel(lines []string) envViewerModel {
	return envViewerModel{lines: lines}
}

// Init initializes the model
func (m envViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles window resizes and scrolling keys
func (m envViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.offset = m.clamp(m.offset)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.offset = m.clamp(m.offset + 1)
		case "up", "k":
			m.offset = m.clamp(m.offset - 1)
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = m.clamp(len(m.lines))
		}
	}

	return m, nil
}

// View renders the visible window plus the key help line
func (m envViewerModel) View() string {
	visible := m.lines[m.offset:]
	if rows := m.rows(); rows > 0 && len(visible) > rows {
		visible = visible[:rows]
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("↑/k up • ↓/j down • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(visible, "\n"), "", help)
}

// rows is the number of content lines that fit above the help line, or 0 when
// the window size is still unknown.
func (m envViewerModel) rows() int {
	if m.height <= 0 {
		return 0
	}
	if r := m.height - 2; r > 0 {
		return r
	}
	return 1
}

func (m envViewerModel) clamp(offset int) int {
	maxOffset := len(m.lines) - m.rows()
	if m.rows() == 0 || maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
