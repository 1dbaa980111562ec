package bubbletea

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/parley"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

const (
	inputHeight  = 3
	statusHeight = 1
	ruleHeight   = 1
)

const keyHints = "ctrl+r voice · ctrl+k key · ctrl+s save · ctrl+l clear · ctrl+t theme · ctrl+c quit"

type mode int

const (
	modeChat mode = iota
	modeSettings
	modeConfirmClear
)

// Deps wires the model to the core. Save writes an export and returns its
// path.
type Deps struct {
	Chat     *parley.Chat
	Voice    *parley.Voice
	Session  *parley.Session
	Store    parley.ConversationStore
	Exporter *parley.Exporter
	Save     func(parley.ExportFile) (string, error)
	Events   <-chan parley.Event
	Labels   parley.Labels
	Logger   *slog.Logger
}

// Model is the Bubble Tea model for the parley TUI.
type Model struct {
	// Input is the message editor. Exported for test access.
	Input textarea.Model
	// KeyInput is the masked API key field of the settings prompt.
	KeyInput textinput.Model
	// Viewport is the scrollable conversation area.
	Viewport viewport.Model
	// Spinner animates the working indicator.
	Spinner spinner.Model

	deps   Deps
	labels parley.Labels
	theme  parley.Theme
	styles Styles
	logger *slog.Logger

	// history mirrors the conversation as reported by EventMessageAppended.
	history []parley.Message
	blocks  []MessageBlock

	mode          mode
	working       bool
	listening     bool
	cancelVoice   context.CancelFunc
	voiceCanceled bool

	status    string
	statusErr bool

	width int
	ready bool
}

// New creates the TUI model. The persisted conversation is shown right
// away; the settings prompt opens when no API key is configured.
func New(d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ta := textarea.New()
	ta.Placeholder = d.Labels.InputPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = d.Labels.APIKeyPrompt
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 0

	m := Model{
		Input:    ta,
		KeyInput: ti,
		Spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		deps:     d,
		labels:   d.Labels,
		logger:   logger,
		history:  d.Store.Messages(),
		status:   d.Labels.StatusReady,
	}
	m = m.applyTheme(parley.ThemeFor(d.Session.Theme()))
	if !d.Session.HasAPIKey() {
		m, _ = m.openSettings()
	}
	return m
}

// Status returns the status-line text.
func (m Model) Status() string { return m.status }

// Working reports whether a reply is outstanding.
func (m Model) Working() bool { return m.working }

// Listening reports whether speech capture is active.
func (m Model) Listening() bool { return m.listening }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, listenForEvent(m.deps.Events))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m, cmd := m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, listenForEvent(m.deps.Events))

	case SubmitDoneMsg:
		return m.handleSubmitDone(msg), nil

	case VoiceDoneMsg:
		return m.handleVoiceDone(msg), nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.logger.Error("export failed", "error", msg.Err)
			m = m.setStatus(m.labels.StatusError+": "+msg.Err.Error(), true)
			return m, nil
		}
		m.logger.Info("exported", "path", msg.Path)
		return m.setStatus(m.labels.StatusExported+": "+msg.Path, false), nil

	case spinner.TickMsg:
		if !m.working {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m.refresh(), cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	switch m.mode {
	case modeChat:
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	case modeSettings:
		m.KeyInput, cmd = m.KeyInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.inputArea())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-inputHeight-statusHeight-ruleHeight, 1)
	m.width = msg.Width

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.SetWidth(msg.Width)
	m.KeyInput.Width = max(msg.Width-4, 1)
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if m.cancelVoice != nil {
			m.cancelVoice()
		}
		return m, tea.Quit
	}

	switch m.mode {
	case modeSettings:
		return m.handleSettingsKey(msg)
	case modeConfirmClear:
		return m.handleConfirmKey(msg), nil
	}

	switch msg.String() {
	case "enter":
		return m.submitInput()
	case "ctrl+r":
		return m.toggleVoice()
	case "ctrl+l":
		m.mode = modeConfirmClear
		return m.setStatus(m.labels.ConfirmClear, false), nil
	case "ctrl+t":
		return m.toggleTheme(), nil
	case "ctrl+k":
		return m.openSettings()
	case "ctrl+s":
		return m.export()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := m.Input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	if m.deps.Chat.Sending() {
		return m.setStatus(m.labels.StatusBusy, false), nil
	}
	m.Input.Reset()
	return m, submit(context.Background(), m.deps.Chat, text)
}

func (m Model) handleSubmitDone(msg SubmitDoneMsg) Model {
	if msg.Err == nil {
		return m
	}
	if m.Input.Value() == "" {
		m.Input.SetValue(msg.Text)
	}
	switch {
	case errors.Is(msg.Err, parley.ErrBusy):
		m = m.setStatus(m.labels.StatusBusy, false)
	case errors.Is(msg.Err, parley.ErrMissingAPIKey), errors.Is(msg.Err, parley.ErrEmptyMessage):
		// Reported through events.
	default:
		m.logger.Error("submit", "error", msg.Err)
	}
	return m
}

func (m Model) handleEvent(e parley.Event) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch e := e.(type) {
	case parley.EventMessageAppended:
		m.history = append(m.history, e.Message)
		m.blocks = append(m.blocks, newBlock(e.Message, m.theme, m.styles, m.labels))
	case parley.EventWorkingStarted:
		m.working = true
		cmd = m.Spinner.Tick
	case parley.EventWorkingStopped:
		m.working = false
	case parley.EventStatus:
		if e.Text == m.labels.StatusListening && m.cancelVoice == nil {
			// Late delivery after VoiceDoneMsg already set the outcome.
			break
		}
		m = m.setStatus(e.Text, e.Text == m.labels.StatusError)
	case parley.EventKeyRequired:
		m, cmd = m.openSettings()
		m = m.setStatus(m.labels.EnterAPIKey, true)
	case parley.EventListeningStarted:
		m.listening = true
	case parley.EventListeningStopped:
		m.listening = false
	}
	return m.refresh(), cmd
}

func (m Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.cancelVoice != nil {
		// Capture ends through VoiceDoneMsg.
		m.cancelVoice()
		m.voiceCanceled = true
		return m, nil
	}
	if m.deps.Voice == nil {
		return m.setStatus(m.labels.StatusNoSpeech, true), nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelVoice = cancel
	m.voiceCanceled = false
	return m, listen(ctx, m.deps.Voice)
}

func (m Model) handleVoiceDone(msg VoiceDoneMsg) Model {
	if m.cancelVoice != nil {
		m.cancelVoice()
		m.cancelVoice = nil
	}
	canceled := m.voiceCanceled
	m.voiceCanceled = false

	var speechErr *parley.SpeechError
	switch {
	case msg.Err == nil:
		if msg.Text != "" {
			m.Input.SetValue(msg.Text)
		}
		return m.setStatus(m.labels.StatusRecognized, false)
	case errors.Is(msg.Err, parley.ErrUnsupported):
		return m.setStatus(m.labels.StatusNoSpeech, true)
	case errors.Is(msg.Err, parley.ErrBusy):
		return m
	case canceled:
		return m.restoreStatus()
	case errors.As(msg.Err, &speechErr):
		m.logger.Warn("speech", "code", speechErr.Code)
		return m.setStatus(m.labels.StatusSpeechFail, true)
	default:
		m.logger.Error("speech", "error", msg.Err)
		return m.setStatus(m.labels.StatusSpeechFail, true)
	}
}

func (m Model) toggleTheme() Model {
	mode, err := m.deps.Session.ToggleTheme()
	if err != nil {
		m.logger.Error("toggle theme", "error", err)
	}
	m = m.applyTheme(parley.ThemeFor(mode))
	if mode == parley.ThemeLight {
		m = m.setStatus(m.labels.StatusThemeLight, false)
	} else {
		m = m.setStatus(m.labels.StatusThemeDark, false)
	}
	return m.refresh()
}

// applyTheme rebuilds every block with the palette of t.
func (m Model) applyTheme(t parley.Theme) Model {
	m.theme = t
	m.styles = NewStyles(t)
	m.Spinner.Style = m.styles.Accent
	m.blocks = make([]MessageBlock, 0, len(m.history))
	for _, msg := range m.history {
		m.blocks = append(m.blocks, newBlock(msg, m.theme, m.styles, m.labels))
	}
	return m
}

func (m Model) openSettings() (Model, tea.Cmd) {
	m.mode = modeSettings
	m.Input.Blur()
	m.KeyInput.SetValue(m.deps.Session.APIKey())
	m.KeyInput.CursorEnd()
	cmd := m.KeyInput.Focus()
	return m, cmd
}

func (m Model) closeSettings() (Model, tea.Cmd) {
	m.mode = modeChat
	m.KeyInput.Blur()
	m.KeyInput.Reset()
	cmd := m.Input.Focus()
	return m, cmd
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		err := m.deps.Session.SetAPIKey(m.KeyInput.Value())
		switch {
		case errors.Is(err, parley.ErrEmptyAPIKey):
			return m.setStatus(m.labels.EnterAPIKey, true), nil
		case err != nil:
			m.logger.Error("save api key", "error", err)
			m = m.setStatus(m.labels.StatusError+": "+err.Error(), true)
		default:
			m = m.setStatus(m.labels.StatusKeySaved, false)
		}
		return m.closeSettings()
	case tea.KeyEsc:
		return m.closeSettings()
	}
	var cmd tea.Cmd
	m.KeyInput, cmd = m.KeyInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeChat
		if err := m.deps.Store.Clear(); err != nil {
			m.logger.Error("clear conversation", "error", err)
			m = m.setStatus(m.labels.StatusError+": "+err.Error(), true)
		} else {
			m = m.setStatus(m.labels.StatusCleared, false)
		}
		m.history = nil
		m.blocks = nil
		return m.refresh()
	case "n", "N", "esc":
		m.mode = modeChat
		return m.restoreStatus()
	}
	return m
}

func (m Model) export() (tea.Model, tea.Cmd) {
	f, err := m.deps.Exporter.Export(m.deps.Store.Messages())
	if errors.Is(err, parley.ErrNothingToExport) {
		return m.setStatus(m.labels.NothingToExport, false), nil
	}
	if err != nil {
		m.logger.Error("export", "error", err)
		return m.setStatus(m.labels.StatusError+": "+err.Error(), true), nil
	}
	return m, save(m.deps.Save, f)
}

func (m Model) setStatus(text string, isErr bool) Model {
	m.status = text
	m.statusErr = isErr
	return m
}

// restoreStatus shows thinking while a reply is outstanding, else ready.
func (m Model) restoreStatus() Model {
	if m.deps.Chat.Sending() {
		return m.setStatus(m.labels.StatusThinking, false)
	}
	return m.setStatus(m.labels.StatusReady, false)
}

func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderContent() string {
	width := m.Viewport.Width
	var parts []string
	if len(m.blocks) == 0 {
		parts = append(parts, NewWelcomeBlock(m.labels.Welcome, m.styles).View(width))
	}
	for _, b := range m.blocks {
		parts = append(parts, b.View(width))
	}
	if m.working {
		parts = append(parts, m.Spinner.View()+" "+m.styles.Muted.Render(m.labels.StatusThinking))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) inputArea() string {
	if m.mode == modeSettings {
		prompt := m.styles.Accent.Render(m.labels.APIKeyPrompt)
		return lipgloss.NewStyle().Height(inputHeight).Render(prompt + "\n" + m.KeyInput.View())
	}
	return m.Input.View()
}

func (m Model) statusLine() string {
	text := m.status
	if m.listening {
		text = "● " + text
	}
	text = runewidth.Truncate(text, m.width, "…")
	style := m.styles.Muted
	if m.statusErr {
		style = m.styles.Error
	}
	line := style.Render(text)
	if m.mode == modeChat {
		if room := m.width - runewidth.StringWidth(text) - 3; room > 10 {
			line += "   " + m.styles.Muted.Render(runewidth.Truncate(keyHints, room, "…"))
		}
	}
	return line
}
