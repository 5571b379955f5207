package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Lucas-Developer/yunit/internal/screenshot"
)

// SessionSelectedMsg is emitted when the user chooses a session entry.
type SessionSelectedMsg struct {
	Key string
}

// ShowLoginListMsg is emitted when the user activates the header back
// action instead of selecting a session.
type ShowLoginListMsg struct{}

// LoginSubmittedMsg carries the user name typed at the prompt.
type LoginSubmittedMsg struct {
	Username string
}

type lastSessionMsg struct {
	key string
	err error
}

type previewMsg struct {
	size screenshot.Size
	err  error
}

type selectionRecordedMsg struct {
	err error
}

func sessionSelectedCmd(key string) tea.Cmd {
	return func() tea.Msg { return SessionSelectedMsg{Key: key} }
}

func showLoginListCmd() tea.Cmd {
	return func() tea.Msg { return ShowLoginListMsg{} }
}
