package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown key.Binding
	Select key.Binding
	Back   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Select, k.Filter, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Select, k.Filter, k.Back, k.Quit}}
}
