package tui

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Lucas-Developer/yunit/internal/sessions"
)

// Layout constants for the capped list height: one line per entry, a
// two-line header, box margins, and a one-line offset from the container
// edge.
const (
	listItemHeight   = 1
	listHeaderHeight = 2
	listMargins      = 2
	listOffset       = 1
)

type sessionItem struct {
	session sessions.Session
	current bool
}

func (i sessionItem) Title() string       { return i.session.Name }
func (i sessionItem) Description() string { return i.session.Key }
func (i sessionItem) FilterValue() string { return i.session.Name }

type sessionDelegate struct{}

func (d sessionDelegate) Height() int                               { return listItemHeight }
func (d sessionDelegate) Spacing() int                              { return 0 }
func (d sessionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d sessionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(sessionItem)
	if !ok {
		return
	}
	name := entry.session.Name
	if entry.current {
		name += " " + currentMark.Render("✓")
	}
	line := "  " + name
	if index == m.Index() {
		line = selectedStyle.Render("❯ " + name)
	}
	fmt.Fprint(w, padRight(line, m.Width()))
}

// SessionList renders the selectable login sessions with a header back
// action. Choosing an entry emits SessionSelectedMsg; the back action
// emits ShowLoginListMsg.
type SessionList struct {
	list       list.Model
	all        []sessions.Session
	visible    []sessions.Session
	currentKey string
	query      string
	filtering  bool
	width      int
	height     int
}

func NewSessionList(entries []sessions.Session, currentKey string) SessionList {
	l := list.New(nil, sessionDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	sl := SessionList{list: l, all: entries, currentKey: currentKey}
	sl.visible = entries
	sl.syncItems()
	sl.selectKey(currentKey)
	return sl
}

// SetSize sets the container dimensions; the list itself never grows past
// the lesser of its natural height and the container.
func (sl *SessionList) SetSize(width, height int) {
	sl.width = width
	sl.height = height
	frameH := listBoxStyle.GetHorizontalFrameSize()
	listWidth := width - frameH
	if listWidth < 20 {
		listWidth = 20
	}
	sl.list.SetWidth(listWidth)
	sl.list.SetHeight(sl.listRows())
}

// ContentHeight reports the capped height of the whole component:
// min(entries + header + margins - offset, container - offset).
func (sl SessionList) ContentHeight() int {
	wanted := listItemHeight*len(sl.visible) + listHeaderHeight + listMargins - listOffset
	if sl.height == 0 {
		return wanted
	}
	limit := sl.height - listOffset
	if wanted < limit {
		return wanted
	}
	return limit
}

func (sl SessionList) listRows() int {
	rows := sl.ContentHeight() - listHeaderHeight - listMargins + listOffset
	if rows < 1 {
		rows = 1
	}
	return rows
}

// CurrentKey returns the key of the currently chosen session.
func (sl SessionList) CurrentKey() string { return sl.currentKey }

// SetCurrentKey marks a session as current without emitting a selection.
func (sl *SessionList) SetCurrentKey(key string) {
	sl.currentKey = key
	sl.syncItems()
	sl.selectKey(key)
}

func (sl *SessionList) syncItems() {
	items := make([]list.Item, 0, len(sl.visible))
	for _, s := range sl.visible {
		items = append(items, sessionItem{session: s, current: s.Key == sl.currentKey})
	}
	sl.list.SetItems(items)
}

func (sl *SessionList) selectKey(key string) {
	for i, s := range sl.visible {
		if s.Key == key {
			sl.list.Select(i)
			return
		}
	}
}

func (sl *SessionList) applyFilter() {
	sl.visible = sessions.Filter(sl.all, sl.query)
	sl.syncItems()
	sl.list.Select(0)
	sl.list.SetHeight(sl.listRows())
}

func (sl SessionList) Update(msg tea.Msg) (SessionList, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		sl.list, cmd = sl.list.Update(msg)
		return sl, cmd
	}

	if sl.filtering {
		switch key.String() {
		case "esc":
			sl.filtering = false
			sl.query = ""
			sl.applyFilter()
			return sl, nil
		case "enter":
			sl.filtering = false
			return sl, nil
		case "backspace":
			if len(sl.query) > 0 {
				_, size := utf8.DecodeLastRuneInString(sl.query)
				sl.query = sl.query[:len(sl.query)-size]
				sl.applyFilter()
			}
			return sl, nil
		default:
			if key.Type == tea.KeyRunes {
				sl.query += string(key.Runes)
				sl.applyFilter()
				return sl, nil
			}
		}
		var cmd tea.Cmd
		sl.list, cmd = sl.list.Update(msg)
		return sl, cmd
	}

	switch key.String() {
	case "esc":
		return sl, showLoginListCmd()
	case "/":
		sl.filtering = true
		sl.query = ""
		return sl, nil
	case "enter":
		item, ok := sl.list.SelectedItem().(sessionItem)
		if !ok {
			return sl, nil
		}
		sl.currentKey = item.session.Key
		sl.syncItems()
		return sl, sessionSelectedCmd(item.session.Key)
	}

	var cmd tea.Cmd
	sl.list, cmd = sl.list.Update(msg)
	return sl, cmd
}

func (sl SessionList) View() string {
	header := titleStyle.Render("Select desktop environment")
	hint := headerHintStyle.Render("esc to go back")
	if sl.filtering {
		hint = headerHintStyle.Render("filter: " + sl.query + "▌")
	}
	width := sl.list.Width()
	gap := width - lipgloss.Width(header) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	top := header + spaces(gap) + hint
	content := top + "\n" + sl.list.View()
	return listBoxStyle.Render(content)
}
