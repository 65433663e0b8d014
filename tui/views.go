package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/breathe/breath"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/panel"
)

const (
	barWidth = 20

	// a panel is the bar plus one cell of padding and one of border on
	// each side, and a one cell gap to its right sibling
	panelWidth  = barWidth + 4 + 1
	panelHeight = 8
)

const (
	unlockedIcon = "🔓"
	lockedIcon   = "🔒"
)

// panelAt maps a terminal cell to the panel drawn over it.
func panelAt(x, y, n int) (int, bool) {
	if x < 0 || y < 0 || y >= panelHeight {
		return 0, false
	}

	i := x / panelWidth
	if i >= n {
		return 0, false
	}

	return i, true
}

func lockView(f breath.Frame) string {
	if !f.LockAvailable {
		return ""
	}

	if f.LockLabel == "" {
		return unlockedIcon
	}

	return lockedIcon + " " + f.LockLabel
}

func (m *Model) panelView(i int, p *panel.Panel) string {
	color := m.deck.Color(i)

	border := lipgloss.RoundedBorder()
	if i == m.focus {
		border = lipgloss.ThickBorder()
	}

	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1).
		MarginRight(1).
		Width(barWidth + 2).
		Align(lipgloss.Center)

	text := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ui.Tint(m.textColor, p.Frame.Alpha())))

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	var s strings.Builder

	s.WriteString(text.Render(p.Frame.Text))
	s.WriteString("\n\n")
	s.WriteString(bar.ViewAs(p.Frame.Progress))
	s.WriteString("\n\n")
	s.WriteString(lockView(p.Frame))

	return box.Render(s.String())
}

func (m *Model) View() string {
	panels := m.deck.Panels()
	views := make([]string, 0, len(panels))

	for i, p := range panels {
		views = append(views, m.panelView(i, p))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	return row + "\n\n" + m.help.View(defaultKeymap)
}
