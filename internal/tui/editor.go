package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/gl7857/jot/internal/config"
	"github.com/gl7857/jot/internal/constants"
	"github.com/gl7857/jot/internal/embed"
	"github.com/gl7857/jot/internal/logging"
	"github.com/gl7857/jot/internal/permission"
	"github.com/gl7857/jot/internal/service"
	"github.com/gl7857/jot/internal/storage"
)

// editorMode selects which screen the editor shows.
type editorMode int

const (
	modeEdit editorMode = iota
	modePermission
	modeHistory
	modeCredits
)

// focusTarget is the widget that receives enter and arrow keys.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusSave
	focusReset
	focusExit
)

// statusKind selects the status message color.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarn
	statusError
)

// Mouse zone IDs.
const (
	zoneInput = "editor_input"
	zoneSave  = "editor_save"
	zoneReset = "editor_reset"
	zoneExit  = "editor_exit"
	zoneAllow = "permission_allow"
	zoneDeny  = "permission_deny"
)

const editorInputHeight = 5

type tickMsg time.Time

type statusClearMsg struct {
	setAt time.Time
}

// Editor is the main jot screen: a text input, Save/Reset/Exit buttons
// and a scrollable view of the saved file.
type Editor struct {
	notes  *service.NotesService
	store  *storage.Store
	grants *permission.Store
	inputs *service.InputHistoryService

	mode    editorMode
	input   textarea.Model
	display viewport.Model
	focus   focusTarget
	zones   *zone.Manager

	picker  *HistoryPicker
	credits *CreditsViewer

	isDark bool
	colors ThemeColors

	width  int
	height int

	content  string
	lastSize int64
	lastMod  time.Time

	status      string
	statusKind  statusKind
	statusSetAt time.Time

	promptFocus int // 0 = allow, 1 = deny
	escAt       time.Time
}

// NewEditor creates the main screen. The permission prompt is shown first
// whenever storage access has not been granted yet.
func NewEditor(notes *service.NotesService, store *storage.Store, grants *permission.Store, inputs *service.InputHistoryService, theme config.Theme) *Editor {
	// Detect dark mode before bubbletea takes over the terminal
	isDark := DetectDarkMode(theme)

	ti := textarea.New()
	ti.Placeholder = "Type your text here..."
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.SetHeight(editorInputHeight)
	ti.Focus()

	m := &Editor{
		notes:   notes,
		store:   store,
		grants:  grants,
		inputs:  inputs,
		mode:    modeEdit,
		input:   ti,
		display: viewport.New(80, 10),
		focus:   focusInput,
		zones:   zone.New(),
		isDark:  isDark,
		colors:  NewThemeColors(isDark),
		width:   80,
		height:  24,
	}

	if grants.Granted() {
		m.content = notes.Content()
	} else {
		m.mode = modePermission
	}
	if st, err := store.Stat(); err == nil {
		m.lastSize = st.Size()
		m.lastMod = st.ModTime()
	}
	m.refreshDisplay()

	return m
}

// Init starts cursor blinking and the content refresh ticker.
func (m *Editor) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.tickCmd())
}

func (m *Editor) tickCmd() tea.Cmd {
	return tea.Tick(constants.ContentRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.picker != nil {
			m.picker.SetSize(msg.Width, msg.Height)
		}
		if m.credits != nil {
			m.credits.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tickMsg:
		if m.mode == modeEdit {
			m.maybeReload()
		}
		return m, m.tickCmd()

	case statusClearMsg:
		if msg.setAt.Equal(m.statusSetAt) {
			m.status = ""
		}
		return m, nil
	}

	switch m.mode {
	case modePermission:
		return m.updatePermission(msg)
	case modeHistory:
		return m.updateHistory(msg)
	case modeCredits:
		return m.updateCredits(msg)
	default:
		return m.updateEdit(msg)
	}
}

func (m *Editor) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleEditKey(msg)
	case tea.MouseMsg:
		return m.handleEditMouse(msg)
	}

	// Component messages such as cursor blink
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Editor) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if !m.escAt.IsZero() && time.Since(m.escAt) <= constants.DoublePressIntervalSec*time.Second {
			logging.Info("Exiting without saving")
			return m, tea.Quit
		}
		m.escAt = time.Now()
		return m, m.setStatus("Press esc again to exit without saving", statusWarn)

	case "ctrl+s":
		return m, m.doSave()

	case "ctrl+r":
		return m, m.doReset()

	case "ctrl+q":
		return m, m.doExit()

	case "ctrl+y":
		return m, m.copyContent()

	case "ctrl+g":
		return m, m.openHistory()

	case "ctrl+o":
		return m, m.openCredits()

	case "tab":
		return m, m.cycleFocus(1)

	case "shift+tab":
		return m, m.cycleFocus(-1)

	case "enter":
		if m.focus != focusInput {
			return m, m.activateFocused()
		}

	case "up", "down", "pgup", "pgdown":
		if m.focus != focusInput {
			m.scrollDisplay(msg.String())
			return m, nil
		}
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Editor) handleEditMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.display.LineUp(3)
	case tea.MouseButtonWheelDown:
		m.display.LineDown(3)
	case tea.MouseButtonLeft:
		switch {
		case m.zones.Get(zoneSave).InBounds(msg):
			return m, m.doSave()
		case m.zones.Get(zoneReset).InBounds(msg):
			return m, m.doReset()
		case m.zones.Get(zoneExit).InBounds(msg):
			return m, m.doExit()
		case m.zones.Get(zoneInput).InBounds(msg):
			return m, m.setFocus(focusInput)
		}
	}
	return m, nil
}

func (m *Editor) updatePermission(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "left", "right", "tab", "shift+tab":
			m.promptFocus = 1 - m.promptFocus
			return m, nil
		case "enter":
			if m.promptFocus == 0 {
				return m, m.allowStorage()
			}
			return m, m.denyStorage()
		case "y", "a":
			return m, m.allowStorage()
		case "n", "d", "esc":
			return m, m.denyStorage()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			switch {
			case m.zones.Get(zoneAllow).InBounds(msg):
				return m, m.allowStorage()
			case m.zones.Get(zoneDeny).InBounds(msg):
				return m, m.denyStorage()
			}
		}
	}
	return m, nil
}

func (m *Editor) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if !m.picker.Done() {
		return m, cmd
	}

	if content, ok := m.picker.Choice(); ok {
		m.input.SetValue(content)
	}
	m.picker = nil
	m.mode = modeEdit
	return m, m.setFocus(focusInput)
}

func (m *Editor) updateCredits(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.credits, cmd = m.credits.Update(msg)
	if !m.credits.Done() {
		return m, cmd
	}

	m.credits = nil
	m.mode = modeEdit
	return m, nil
}

// cycleFocus moves focus between the input and the buttons.
func (m *Editor) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + 4) % 4
	return m.setFocus(focusTarget(next))
}

func (m *Editor) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	if target == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Editor) activateFocused() tea.Cmd {
	switch m.focus {
	case focusSave:
		return m.doSave()
	case focusReset:
		return m.doReset()
	case focusExit:
		return m.doExit()
	}
	return nil
}

func (m *Editor) scrollDisplay(key string) {
	switch key {
	case "up":
		m.display.LineUp(1)
	case "down":
		m.display.LineDown(1)
	case "pgup":
		m.display.ViewUp()
	case "pgdown":
		m.display.ViewDown()
	}
}

// doSave appends the input to the file. The input is kept so the same
// text can be appended again.
func (m *Editor) doSave() tea.Cmd {
	err := m.notes.Save(context.Background(), m.input.Value())
	if err != nil {
		if errors.Is(err, service.ErrStorageBlocked) {
			return m.setStatus("Storage or permission problem", statusError)
		}
		logging.Error("Failed to save text: %v", err)
		return m.setStatus("Failed to save text file", statusError)
	}
	m.reloadContent()
	return m.setStatus("Text file saved successfully", statusSuccess)
}

// doReset truncates the file and clears the input.
func (m *Editor) doReset() tea.Cmd {
	err := m.notes.Clear(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrStorageBlocked) {
			return m.setStatus("Storage or permission problem", statusError)
		}
		logging.Error("Failed to clear text: %v", err)
		return m.setStatus("Failed to clear text file", statusError)
	}
	m.input.Reset()
	m.reloadContent()
	return m.setStatus("Text file cleared", statusSuccess)
}

// doExit saves the current input and quits. The quit happens even when
// the save is blocked or fails.
func (m *Editor) doExit() tea.Cmd {
	if err := m.notes.Save(context.Background(), m.input.Value()); err != nil {
		logging.Warn("Save on exit failed: %v", err)
	}
	return tea.Quit
}

func (m *Editor) copyContent() tea.Cmd {
	content := m.notes.Content()
	if content == "" {
		return m.setStatus("Nothing to copy", statusInfo)
	}
	if err := clipboard.WriteAll(content); err != nil {
		logging.Warn("Clipboard copy failed: %v", err)
		return m.setStatus("Failed to copy to clipboard", statusError)
	}
	return m.setStatus("Copied file content to clipboard", statusSuccess)
}

func (m *Editor) openHistory() tea.Cmd {
	if m.inputs == nil {
		return m.setStatus("Input history is unavailable", statusInfo)
	}
	contents, err := m.inputs.GetAllContents()
	if err != nil {
		logging.Warn("Failed to load input history: %v", err)
		return m.setStatus("Failed to load input history", statusError)
	}
	if len(contents) == 0 {
		return m.setStatus("No saved inputs yet", statusInfo)
	}

	m.picker = NewHistoryPicker(contents, m.colors)
	m.picker.SetSize(m.width, m.height)
	m.mode = modeHistory
	return m.picker.Init()
}

func (m *Editor) openCredits() tea.Cmd {
	text, err := embed.GetCredits()
	if err != nil {
		logging.Warn("Failed to load credits: %v", err)
		return m.setStatus("Failed to load credits", statusError)
	}

	m.credits = NewCreditsViewer(text, m.colors)
	m.credits.SetSize(m.width, m.height)
	m.mode = modeCredits
	return nil
}

func (m *Editor) allowStorage() tea.Cmd {
	if err := m.grants.Grant(); err != nil {
		logging.Error("Failed to record storage grant: %v", err)
		m.mode = modeEdit
		return m.setStatus("Failed to record storage grant", statusError)
	}
	logging.Info("Storage access granted")
	m.mode = modeEdit
	m.reloadContent()
	return m.setStatus("Storage access granted", statusSuccess)
}

func (m *Editor) denyStorage() tea.Cmd {
	if err := m.grants.Deny(); err != nil {
		logging.Warn("Failed to record storage denial: %v", err)
	}
	logging.Info("Storage access denied")
	m.mode = modeEdit
	m.refreshDisplay()
	return m.setStatus("Storage access denied, saving is disabled", statusWarn)
}

// maybeReload reloads the display when the file changed on disk.
func (m *Editor) maybeReload() {
	if !m.grants.Granted() {
		return
	}

	var size int64
	var mod time.Time
	if st, err := m.store.Stat(); err == nil {
		size = st.Size()
		mod = st.ModTime()
	}
	if size == m.lastSize && mod.Equal(m.lastMod) {
		return
	}
	logging.Debug("File changed on disk, reloading (size %d -> %d)", m.lastSize, size)
	m.reloadContent()
}

// reloadContent re-reads the file and updates the display.
func (m *Editor) reloadContent() {
	m.content = m.notes.Content()
	if st, err := m.store.Stat(); err == nil {
		m.lastSize = st.Size()
		m.lastMod = st.ModTime()
	} else {
		m.lastSize = 0
		m.lastMod = time.Time{}
	}
	m.refreshDisplay()
}

func (m *Editor) setStatus(text string, kind statusKind) tea.Cmd {
	m.status = text
	m.statusKind = kind
	m.statusSetAt = time.Now()

	setAt := m.statusSetAt
	return tea.Tick(constants.StatusMessageTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{setAt: setAt}
	})
}

func (m *Editor) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	inputWidth := m.width - 2
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.input.SetWidth(inputWidth)

	m.display.Width = m.width
	displayHeight := m.height - editorInputHeight - 4
	if displayHeight < 3 {
		displayHeight = 3
	}
	m.display.Height = displayHeight
}

// RunEditor runs the main screen until the user exits.
func RunEditor(notes *service.NotesService, store *storage.Store, grants *permission.Store, inputs *service.InputHistoryService, theme config.Theme) error {
	logging.Global().SetComponent("tui")

	m := NewEditor(notes, store, grants, inputs, theme)
	defer m.zones.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
