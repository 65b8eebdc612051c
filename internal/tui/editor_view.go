package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"

	"github.com/gl7857/jot/internal/constants"
)

// View renders the current screen.
func (m *Editor) View() string {
	var out string
	switch m.mode {
	case modePermission:
		out = m.viewPermission()
	case modeHistory:
		out = m.picker.View()
	case modeCredits:
		out = m.credits.View()
	default:
		out = m.viewEdit()
	}
	return m.zones.Scan(out)
}

func (m *Editor) viewEdit() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.colors.Title)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(" jot "))
	sb.WriteString("\n")

	sb.WriteString(m.zones.Mark(zoneInput, m.input.View()))
	sb.WriteString("\n")

	sb.WriteString(m.viewButtons())
	sb.WriteString("\n")

	sb.WriteString(m.viewSeparator())
	sb.WriteString("\n")

	sb.WriteString(m.display.View())
	sb.WriteString("\n")

	sb.WriteString(m.viewStatusBar())

	return sb.String()
}

func (m *Editor) viewButtons() string {
	save := m.zones.Mark(zoneSave, m.renderButton("Save", m.focus == focusSave))
	reset := m.zones.Mark(zoneReset, m.renderButton("Reset", m.focus == focusReset))
	exit := m.zones.Mark(zoneExit, m.renderButton("Exit", m.focus == focusExit))
	return "  " + save + "  " + reset + "  " + exit
}

func (m *Editor) renderButton(label string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(m.colors.TextBright).
			Background(m.colors.Selection).
			Render("[ " + label + " ]")
	}
	return lipgloss.NewStyle().
		Foreground(m.colors.Text).
		Render("[ " + label + " ]")
}

func (m *Editor) viewSeparator() string {
	label := "─── saved text "
	rest := m.width - lipgloss.Width(label)
	if rest < 0 {
		rest = 0
	}
	return lipgloss.NewStyle().
		Foreground(m.colors.Border).
		Render(label + strings.Repeat("─", rest))
}

func (m *Editor) viewStatusBar() string {
	barStyle := lipgloss.NewStyle().
		Background(m.colors.StatusBar).
		Foreground(m.colors.StatusBarText)

	leftColor := m.colors.StatusBarText
	left := " tab: focus · ctrl+s: save · ctrl+r: reset · ctrl+q: exit · ctrl+g: history · ctrl+o: credits"
	if m.status != "" {
		left = " " + m.status
		switch m.statusKind {
		case statusSuccess:
			leftColor = m.colors.Success
		case statusWarn:
			leftColor = m.colors.Warning
		case statusError:
			leftColor = m.colors.Error
		}
	}

	right := truncateWidth(displayPath(m.store.Path()), constants.MaxStatusPathLen)
	right += " · " + humanSize(m.store.Size()) + " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = truncateWidth(left, max(0, m.width-lipgloss.Width(right)-1))
		gap = max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	}

	return barStyle.Foreground(leftColor).Render(left) +
		barStyle.Render(strings.Repeat(" ", gap)) +
		barStyle.Render(right)
}

func (m *Editor) viewPermission() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.colors.Title)
	pathStyle := lipgloss.NewStyle().Foreground(m.colors.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(m.colors.TextDim)
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.colors.Accent).
		Padding(1, 2)

	allow := m.zones.Mark(zoneAllow, m.renderButton("Allow", m.promptFocus == 0))
	deny := m.zones.Mark(zoneDeny, m.renderButton("Deny", m.promptFocus == 1))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Storage access required"))
	sb.WriteString("\n\n")
	sb.WriteString("jot stores everything you save in:\n")
	sb.WriteString("  " + pathStyle.Render(displayPath(m.store.Path())))
	sb.WriteString("\n\n")
	sb.WriteString("Allow jot to read and write this file?\n\n")
	sb.WriteString("    " + allow + "   " + deny)
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("←/→: switch · enter: confirm · esc: deny"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		boxStyle.Render(sb.String()))
}

// refreshDisplay rewrites the viewport from the current content. The view
// sticks to the bottom so freshly appended text stays visible.
func (m *Editor) refreshDisplay() {
	dimStyle := lipgloss.NewStyle().Foreground(m.colors.TextDim)

	switch {
	case !m.grants.Granted():
		m.display.SetContent(dimStyle.Render("Storage access not granted. Saved text cannot be shown."))
	case m.content == "":
		m.display.SetContent(dimStyle.Render("The file is empty."))
	default:
		atBottom := m.display.AtBottom()
		m.display.SetContent(m.content)
		if atBottom {
			m.display.GotoBottom()
		}
	}
}

// truncateWidth trims s to fit into maxWidth terminal cells, appending an
// ellipsis when anything was cut. Unlike byte truncation this keeps wide
// runes from overflowing the status bar.
func truncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return rw.Truncate(s, maxWidth, "…")
}

// displayPath shortens the home directory prefix to ~ for display.
func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
