package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginPrompt captures a user name before the session launches.
// Authentication itself is out of scope; the prompt stops at the name.
type loginPrompt struct {
	input textinput.Model
}

func newLoginPrompt() loginPrompt {
	ti := textinput.New()
	ti.Placeholder = "user name"
	ti.CharLimit = 64
	ti.Width = 32
	return loginPrompt{input: ti}
}

func (p *loginPrompt) Focus() tea.Cmd {
	return p.input.Focus()
}

func (p *loginPrompt) Reset() {
	p.input.Reset()
	p.input.Blur()
}

func (p loginPrompt) Update(msg tea.Msg) (loginPrompt, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		username := strings.TrimSpace(p.input.Value())
		if username == "" {
			return p, nil
		}
		return p, func() tea.Msg { return LoginSubmittedMsg{Username: username} }
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p loginPrompt) View(sessionName string) string {
	title := titleStyle.Render("Log in to " + sessionName)
	return listBoxStyle.Render(title + "\n\n" + p.input.View())
}
