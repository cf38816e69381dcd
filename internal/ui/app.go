package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/afkscreen/internal/state"
)

// Refresher is the part of the refresh loop the screen drives. Both methods
// must return without blocking on network I/O.
type Refresher interface {
	TriggerManualRefresh()
	Stop()
}

// focusArea is the control that receives keys.
type focusArea int

const (
	focusRefresh focusArea = iota
	focusReason
)

// Options configures the UI.
type Options struct {
	Updates     <-chan state.DisplayState
	Refresher   Refresher
	Channel     string
	ThemeName   string
	Reason      string
	WindowTitle string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	updates     <-chan state.DisplayState
	refresher   Refresher
	channel     string
	windowTitle string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	reason   textinput.Model
	focus    focusArea
	width    int
	height   int
	showHelp bool
	quitting bool

	// Data state
	display    state.DisplayState
	refreshing bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}
	windowTitle := opts.WindowTitle
	if windowTitle == "" {
		windowTitle = defaultWindowTitle
	}

	reason := textinput.New()
	reason.Prompt = ""
	reason.Placeholder = defaultReason
	reason.CharLimit = reasonCharLimit
	reason.Width = reasonWidth
	reason.SetValue(opts.Reason)

	m := Model{
		updates:     opts.Updates,
		refresher:   opts.Refresher,
		channel:     strings.TrimSpace(opts.Channel),
		windowTitle: windowTitle,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		reason:      reason,
		focus:       focusRefresh,
		display:     state.Loading(),
	}
	m.applyTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.windowTitle),
		waitForDisplay(m.updates),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case displayMsg:
		// The whole display state is replaced in one assignment. The mailbox
		// coalesces, so a publication cannot be matched to the request that
		// caused it; the spinner stops at the first one after a refresh.
		m.display = state.DisplayState(msg)
		m.refreshing = false
		return m, waitForDisplay(m.updates)

	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusReason {
		var cmd tea.Cmd
		m.reason, cmd = m.reason.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.close()
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.focus == focusReason {
		return m.handleReasonKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.close()

	case key.Matches(msg, m.keys.Refresh), key.Matches(msg, m.keys.Press):
		return m.manualRefresh()

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		return m.editReason()

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}
	return m, nil
}

// handleReasonKey forwards typing to the reason field until editing ends.
func (m Model) handleReasonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.DoneEditing) {
		m.reason.Blur()
		m.focus = focusRefresh
		return m, nil
	}
	var cmd tea.Cmd
	m.reason, cmd = m.reason.Update(msg)
	return m, cmd
}

func (m Model) editReason() (tea.Model, tea.Cmd) {
	m.focus = focusReason
	m.reason.CursorEnd()
	return m, m.reason.Focus()
}

// manualRefresh asks the refresh loop for an immediate lookup. The lookup
// runs off the event loop; its result arrives later as a displayMsg.
func (m Model) manualRefresh() (tea.Model, tea.Cmd) {
	if m.refresher == nil {
		return m, nil
	}
	m.refresher.TriggerManualRefresh()
	if m.refreshing {
		return m, nil
	}
	m.refreshing = true
	return m, m.spinner.Tick
}

// close stops the refresh loop before the program exits.
func (m Model) close() (tea.Model, tea.Cmd) {
	if m.refresher != nil {
		m.refresher.Stop()
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.reason.TextStyle = styles.Text.Italic(true)
	m.reason.PlaceholderStyle = styles.FaintText.Italic(true)
	m.reason.Cursor.Style = styles.AccentText
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.Footer.Padding(0)
	m.help.Styles.ShortDesc = styles.Footer.Padding(0)
	m.help.Styles.ShortSeparator = styles.Footer.Padding(0)
}

// Reason returns the current away reason text.
func (m Model) Reason() string {
	return m.reason.Value()
}

// Display returns the display state currently rendered.
func (m Model) Display() state.DisplayState {
	return m.display
}

// Messages

type displayMsg state.DisplayState

// Commands

// waitForDisplay blocks, off the event loop, until the refresh loop
// publishes the next display state.
func waitForDisplay(updates <-chan state.DisplayState) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		display, ok := <-updates
		if !ok {
			return nil
		}
		return displayMsg(display)
	}
}
