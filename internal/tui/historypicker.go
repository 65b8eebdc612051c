package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// HistoryPicker is a fuzzy-searchable picker over previously saved inputs.
type HistoryPicker struct {
	input    textinput.Model
	history  []string // All history entries, newest first
	filtered []int    // Indices into history for filtered results
	cursor   int
	colors   ThemeColors
	width    int
	height   int
	done     bool
	chosen   bool
	selected string
}

// NewHistoryPicker creates a picker over the given entries.
func NewHistoryPicker(history []string, colors ThemeColors) *HistoryPicker {
	ti := textinput.New()
	ti.Placeholder = "Type to search history..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	// Initialize filtered to all indices
	filtered := make([]int, len(history))
	for i := range history {
		filtered[i] = i
	}

	return &HistoryPicker{
		input:    ti,
		history:  history,
		filtered: filtered,
		cursor:   0,
		colors:   colors,
		width:    80,
		height:   24,
	}
}

// Init starts cursor blinking.
func (p *HistoryPicker) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the picker dimensions.
func (p *HistoryPicker) SetSize(width, height int) {
	p.width = width
	p.height = height

	inputWidth := min(60, width-10)
	if inputWidth > 20 {
		p.input.Width = inputWidth
	}
}

// Done reports whether the picker has finished.
func (p *HistoryPicker) Done() bool {
	return p.done
}

// Choice returns the selected entry. ok is false when the picker was
// canceled.
func (p *HistoryPicker) Choice() (content string, ok bool) {
	return p.selected, p.chosen
}

// Update handles messages.
func (p *HistoryPicker) Update(msg tea.Msg) (*HistoryPicker, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc", "ctrl+g":
			p.done = true
			p.chosen = false
			return p, nil

		case "enter":
			if len(p.filtered) > 0 && p.cursor < len(p.filtered) {
				p.selected = p.history[p.filtered[p.cursor]]
				p.chosen = true
			}
			p.done = true
			return p, nil

		case "up", "ctrl+k", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil

		case "down", "ctrl+j", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil

		case "pgup", "ctrl+b":
			p.cursor -= 10
			if p.cursor < 0 {
				p.cursor = 0
			}
			return p, nil

		case "pgdown", "ctrl+f":
			p.cursor += 10
			if p.cursor >= len(p.filtered) {
				p.cursor = max(0, len(p.filtered)-1)
			}
			return p, nil

		case "ctrl+u":
			p.cursor -= 5
			if p.cursor < 0 {
				p.cursor = 0
			}
			return p, nil

		case "ctrl+d":
			p.cursor += 5
			if p.cursor >= len(p.filtered) {
				p.cursor = max(0, len(p.filtered)-1)
			}
			return p, nil
		}
	}

	// Update text input
	p.input, cmd = p.input.Update(msg)

	// Update filtered list based on input
	p.updateFiltered()

	return p, cmd
}

// updateFiltered filters history based on the query.
func (p *HistoryPicker) updateFiltered() {
	query := p.input.Value()
	if query == "" {
		// Show all
		p.filtered = make([]int, len(p.history))
		for i := range p.history {
			p.filtered[i] = i
		}
		if p.cursor >= len(p.filtered) {
			p.cursor = 0
		}
		return
	}

	// Fuzzy search
	matches := fuzzy.Find(query, p.history)

	p.filtered = make([]int, len(matches))
	for i, match := range matches {
		p.filtered[i] = match.Index
	}

	// Reset cursor if out of bounds
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}

// View renders the picker.
func (p *HistoryPicker) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.colors.Title)

	inputStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.colors.Accent).
		Padding(0, 1)

	itemStyle := lipgloss.NewStyle().
		Foreground(p.colors.Text).
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		Foreground(p.colors.Accent).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(p.colors.TextDim)

	helpStyle := lipgloss.NewStyle().
		Foreground(p.colors.TextDim).
		MarginTop(1)

	previewBorderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.colors.Border).
		Padding(0, 1)

	previewTitleStyle := lipgloss.NewStyle().
		Foreground(p.colors.TextDim).
		Bold(true)

	var sb strings.Builder

	// Title
	sb.WriteString(titleStyle.Render("Saved inputs"))
	sb.WriteString("\n\n")

	// Input
	sb.WriteString(inputStyle.Render(p.input.View()))
	sb.WriteString("\n\n")

	// Reserve: title(2) + input(3) + gap(1) + help(2) + preview area
	reservedLines := 10
	previewHeight := 5
	listHeight := max(3, p.height-reservedLines-previewHeight-2)

	if len(p.filtered) == 0 {
		if len(p.history) == 0 {
			sb.WriteString(dimStyle.Render("  No history yet"))
		} else {
			sb.WriteString(dimStyle.Render("  No matching entries"))
		}
		sb.WriteString("\n")
	} else {
		// Visible range around the cursor
		start := 0
		if p.cursor >= listHeight {
			start = p.cursor - listHeight + 1
		}
		end := min(start+listHeight, len(p.filtered))

		for i := start; i < end; i++ {
			content := p.history[p.filtered[i]]

			// Single-line display of possibly multi-line content
			display := truncateWithEllipsis(content, p.width-10)
			display = strings.ReplaceAll(display, "\n", " ")

			if i == p.cursor {
				sb.WriteString(selectedStyle.Render("> " + display))
			} else {
				sb.WriteString(itemStyle.Render(display))
			}
			sb.WriteString("\n")
		}

		if len(p.filtered) > listHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d/%d", p.cursor+1, len(p.filtered))))
			sb.WriteString("\n")
		}
	}

	// Preview of the selected entry
	if len(p.filtered) > 0 && p.cursor < len(p.filtered) {
		content := p.history[p.filtered[p.cursor]]

		sb.WriteString("\n")
		sb.WriteString(previewTitleStyle.Render("Preview:"))
		sb.WriteString("\n")

		lines := strings.Split(content, "\n")
		previewLines := min(previewHeight, len(lines))
		preview := strings.Join(lines[:previewLines], "\n")
		if len(lines) > previewHeight {
			preview += "\n..."
		}

		previewWidth := min(p.width-6, 70)
		truncated := make([]string, 0)
		for _, line := range strings.Split(preview, "\n") {
			truncated = append(truncated, truncateWithEllipsis(line, previewWidth))
		}
		preview = strings.Join(truncated, "\n")

		sb.WriteString(previewBorderStyle.Width(previewWidth).Render(preview))
	}

	// Help
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("↑/↓: Navigate  Enter: Insert  Esc: Cancel"))

	return sb.String()
}

// truncateWithEllipsis truncates a string to maxLen and adds ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
