package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CreditsViewer shows the bundled credits text in a scrollable view.
type CreditsViewer struct {
	vp     viewport.Model
	colors ThemeColors
	width  int
	height int
	done   bool
}

// NewCreditsViewer creates a viewer over the given text.
func NewCreditsViewer(content string, colors ThemeColors) *CreditsViewer {
	vp := viewport.New(80, 20)
	vp.SetContent(content)

	return &CreditsViewer{
		vp:     vp,
		colors: colors,
		width:  80,
		height: 24,
	}
}

// SetSize updates the viewer dimensions.
func (v *CreditsViewer) SetSize(width, height int) {
	v.width = width
	v.height = height

	v.vp.Width = width
	vpHeight := height - 2
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.vp.Height = vpHeight
}

// Done reports whether the viewer has been closed.
func (v *CreditsViewer) Done() bool {
	return v.done
}

// Update handles messages.
func (v *CreditsViewer) Update(msg tea.Msg) (*CreditsViewer, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc", "q", "ctrl+o":
			v.done = true
			return v, nil
		case "g", "home":
			v.vp.GotoTop()
			return v, nil
		case "G", "end":
			v.vp.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// View renders the viewer.
func (v *CreditsViewer) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(v.colors.Title)
	barStyle := lipgloss.NewStyle().
		Background(v.colors.StatusBar).
		Foreground(v.colors.StatusBarText)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(" credits "))
	sb.WriteString("\n")
	sb.WriteString(v.vp.View())
	sb.WriteString("\n")

	left := " ↑/↓: scroll · esc: close"
	right := fmt.Sprintf(" %3.0f%% ", v.vp.ScrollPercent()*100)
	gap := v.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(barStyle.Render(left + strings.Repeat(" ", gap) + right))

	return sb.String()
}
