package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Lucas-Developer/yunit/internal/config"
	"github.com/Lucas-Developer/yunit/internal/database/repository"
	"github.com/Lucas-Developer/yunit/internal/display"
	"github.com/Lucas-Developer/yunit/internal/screenshot"
	"github.com/Lucas-Developer/yunit/internal/sessions"
)

type phase int

const (
	phaseSessions phase = iota
	phaseLogin
	phaseReady
)

// GreeterWindowID names the greeter's own surface in the window registry.
const GreeterWindowID = "greeter"

// Model is the top-level greeter: session list, login prompt, launch
// summary.
type Model struct {
	ctx      context.Context
	cfg      config.Config
	provider *screenshot.Provider
	windows  *display.Registry
	state    *repository.GreeterStateRepo

	sessionList SessionList
	prompt      loginPrompt
	keys        keyMap

	phase    phase
	selected sessions.Session
	username string
	preview  screenshot.Size
	hasPrev  bool
	status   string
	isErr    bool
	width    int
	height   int
}

// New wires the greeter model. The session list and collaborators are
// passed in explicitly rather than looked up from globals.
func New(ctx context.Context, cfg config.Config, entries []sessions.Session,
	provider *screenshot.Provider, windows *display.Registry, state *repository.GreeterStateRepo) Model {
	return Model{
		ctx:         ctx,
		cfg:         cfg,
		provider:    provider,
		windows:     windows,
		state:       state,
		sessionList: NewSessionList(entries, cfg.Sessions.Default),
		prompt:      newLoginPrompt(),
		keys:        newKeyMap(),
		status:      "Choose a session to continue.",
	}
}

func (m Model) Init() tea.Cmd {
	user := m.cfg.Greeter.DefaultUser
	if user == "" || m.state == nil {
		return nil
	}
	return func() tea.Msg {
		key, err := m.state.LastSession(m.ctx, user)
		return lastSessionMsg{key: key, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Terminal cells approximate one grid unit across and two down.
		if m.windows != nil {
			m.windows.Resize(GreeterWindowID,
				msg.Width*m.cfg.Screenshot.GridUnitPx,
				msg.Height*m.cfg.Screenshot.GridUnitPx*2)
		}
		m.sessionList.SetSize(m.contentWidth(), m.height-3)
		return m, nil

	case lastSessionMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("State load failed: %v", msg.err), true)
			return m, nil
		}
		if msg.key != "" {
			m.sessionList.SetCurrentKey(msg.key)
			m.setStatus("Restored your last session choice.", false)
		}
		return m, nil

	case SessionSelectedMsg:
		if s, ok := sessions.Find(m.sessionList.all, msg.Key); ok {
			m.selected = s
		} else {
			m.selected = sessions.Session{Key: msg.Key, Name: msg.Key}
		}
		m.phase = phaseLogin
		m.hasPrev = false
		m.setStatus("Session: "+m.selected.Name, false)
		return m, tea.Batch(m.prompt.Focus(), m.previewCmd(msg.Key))

	case ShowLoginListMsg:
		m.setStatus("Returning to the login list.", false)
		return m, nil

	case previewMsg:
		// Any preview failure is silent degrade: no preview, no error
		// surfaced to the user.
		if msg.err == nil {
			m.preview = msg.size
			m.hasPrev = true
		}
		return m, nil

	case LoginSubmittedMsg:
		m.username = msg.Username
		m.phase = phaseReady
		return m, m.recordCmd(msg.Username, m.selected.Key)

	case selectionRecordedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Could not remember selection: %v", msg.err), true)
			return m, nil
		}
		m.setStatus("Session choice remembered.", false)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseSessions:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.sessionList, cmd = m.sessionList.Update(msg)
		return m, cmd
	case phaseLogin:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.phase = phaseSessions
			m.prompt.Reset()
			m.setStatus("Choose a session to continue.", false)
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	default:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m Model) View() string {
	var body string
	switch m.phase {
	case phaseSessions:
		body = m.sessionList.View()
	case phaseLogin:
		body = m.prompt.View(m.selected.Name)
		if m.hasPrev {
			body += "\n" + statusStyle.Render(
				fmt.Sprintf("preview %d×%d", m.preview.Width, m.preview.Height))
		}
	default:
		body = listBoxStyle.Render(titleStyle.Render("Starting "+m.selected.Name) +
			"\n\n" + statusStyle.Render("for "+m.username+", press enter to close"))
	}

	statusLine := statusStyle.Render(m.status)
	if m.isErr {
		statusLine = errorStyle.Render(m.status)
	}
	footer := m.renderFooter(renderHelp(m.keys.ShortHelp()))

	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, body)
	return main + "\n" + statusLine + "\n" + footer
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.isErr = isErr
}

func (m Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	width := m.width - 4
	if width > 72 {
		width = 72
	}
	if width < 24 {
		width = 24
	}
	return width
}

func (m Model) previewCmd(key string) tea.Cmd {
	if m.provider == nil {
		return nil
	}
	return func() tea.Msg {
		_, size, err := m.provider.Request(key+"/greeter", screenshot.Size{})
		return previewMsg{size: size, err: err}
	}
}

func (m Model) recordCmd(username, sessionKey string) tea.Cmd {
	if m.state == nil || sessionKey == "" {
		return nil
	}
	return func() tea.Msg {
		return selectionRecordedMsg{err: m.state.RecordSelection(m.ctx, username, sessionKey)}
	}
}

func (m Model) renderFooter(text string) string {
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Render(padRight(text, m.width-footerStyle.GetHorizontalFrameSize()))
}
