package menu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings the state machine reacts to.
type KeyMap struct {
	Select key.Binding
	Prev   key.Binding
	Next   key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Prev:   key.NewBinding(key.WithKeys("up", "left", "backspace"), key.WithHelp("↑/←", "previous")),
	Next:   key.NewBinding(key.WithKeys("down", "right", "tab"), key.WithHelp("↓/→", "next")),
}

// Step feeds one key press to the menu showing entries in state st.
func Step(entries []Entry, st State, msg tea.KeyMsg) Intent {
	count := len(entries)
	if count == 0 {
		return Redraw()
	}
	selected := Wrap(st.Selected, count)
	switch {
	case key.Matches(msg, Keys.Select):
		return entries[selected-1].Intent
	case key.Matches(msg, Keys.Prev):
		st.Selected = Wrap(selected-1, count)
		return Enter(st)
	case key.Matches(msg, Keys.Next):
		st.Selected = Wrap(selected+1, count)
		return Enter(st)
	}
	if n, ok := digit(msg); ok && n <= count {
		return entries[n-1].Intent
	}
	return Redraw()
}

// digit reports the value of a single 1-9 key press.
func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}
