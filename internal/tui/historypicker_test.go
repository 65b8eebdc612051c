package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testPickerEntries() []string {
	return []string{
		"buy milk",
		"call the bank",
		"meeting notes\nsecond line",
	}
}

func TestHistoryPicker_ShowsAllWithoutQuery(t *testing.T) {
	p := NewHistoryPicker(testPickerEntries(), NewThemeColors(true))

	if len(p.filtered) != 3 {
		t.Errorf("Expected 3 entries without query, got %d", len(p.filtered))
	}
}

func TestHistoryPicker_FuzzyFilter(t *testing.T) {
	p := NewHistoryPicker(testPickerEntries(), NewThemeColors(true))

	p.input.SetValue("bank")
	p.updateFiltered()

	if len(p.filtered) != 1 {
		t.Fatalf("Expected 1 match for %q, got %d", "bank", len(p.filtered))
	}
	if p.history[p.filtered[0]] != "call the bank" {
		t.Errorf("Expected bank entry, got %q", p.history[p.filtered[0]])
	}
}

func TestHistoryPicker_NoMatches(t *testing.T) {
	p := NewHistoryPicker(testPickerEntries(), NewThemeColors(true))

	p.input.SetValue("zzzzzz")
	p.updateFiltered()

	if len(p.filtered) != 0 {
		t.Errorf("Expected no matches, got %d", len(p.filtered))
	}

	view := p.View()
	if !strings.Contains(view, "No matching entries") {
		t.Error("Expected view to show no matching entries")
	}
}

func TestHistoryPicker_Selection(t *testing.T) {
	p := NewHistoryPicker(testPickerEntries(), NewThemeColors(true))

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !p.Done() {
		t.Fatal("Expected picker to be done after enter")
	}
	content, ok := p.Choice()
	if !ok {
		t.Fatal("Expected a selection")
	}
	if content != "call the bank" {
		t.Errorf("Expected second entry, got %q", content)
	}
}

func TestHistoryPicker_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlG, tea.KeyCtrlC} {
		p := NewHistoryPicker(testPickerEntries(), NewThemeColors(true))

		p, _ = p.Update(tea.KeyMsg{Type: key})

		if !p.Done() {
			t.Errorf("Expected picker done after %v", key)
		}
		if _, ok := p.Choice(); ok {
			t.Errorf("Expected no selection after %v", key)
		}
	}
}

func TestHistoryPicker_EnterOnEmptyListCancels(t *testing.T) {
	p := NewHistoryPicker(nil, NewThemeColors(true))

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !p.Done() {
		t.Fatal("Expected picker done")
	}
	if _, ok := p.Choice(); ok {
		t.Error("Expected no selection from an empty list")
	}
}

func TestHistoryPicker_MultilinePreview(t *testing.T) {
	p := NewHistoryPicker(testPickerEntries(), NewThemeColors(true))

	p.cursor = 2
	view := p.View()

	if !strings.Contains(view, "Preview:") {
		t.Error("Expected preview section")
	}
	if !strings.Contains(view, "second line") {
		t.Error("Expected preview to show the second line")
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long string truncated",
			input:    "hello world",
			maxLen:   8,
			expected: "hello...",
		},
		{
			name:     "tiny max returns input",
			input:    "hello",
			maxLen:   3,
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateWithEllipsis(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateWithEllipsis(%q, %d) = %q, want %q",
					tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}
