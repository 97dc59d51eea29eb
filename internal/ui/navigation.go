package ui

import (
	"github.com/atomicstack/trackmoney/internal/logging/events"
	"github.com/atomicstack/trackmoney/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// enterState makes st current. The selection is wrapped against the menu's
// entries, which are rebuilt from the ledger every time.
func (m *Model) enterState(st ViewState) tea.Cmd {
	entries, ok := m.registry.Entries(m.menuContext(st))
	if !ok {
		st = menu.Home()
		entries, _ = m.registry.Entries(m.menuContext(st))
	}
	st.Selected = menu.Wrap(st.Selected, len(entries))
	m.state = st
	m.entries = entries
	m.mode = ModeMenu
	m.form = nil
	m.pending = nil
	events.UI.StateEnter(string(st.Menu), st.Selected, st.Subheading)
	return tea.Batch(tea.ClearScreen, tea.HideCursor)
}

func (m *Model) menuContext(st ViewState) menu.Context {
	return menu.Context{State: st, Records: m.ledger.Records(), Decimals: m.decimals, ListQuery: m.listQuery}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeFarewell:
		return tea.Quit
	case ModeEntry:
		return m.handleFormKey(keyMsg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m.invoke(menu.ActionQuit)
	}
	return m.apply(menu.Step(m.entries, m.state, keyMsg), keyMsg)
}

// apply carries out an Intent returned by the menu state machine.
func (m *Model) apply(intent menu.Intent, keyMsg tea.KeyMsg) tea.Cmd {
	switch intent.Kind {
	case menu.IntentEnter:
		next := intent.State
		if next.Menu == m.state.Menu && next.Subheading == m.state.Subheading && next.Query == m.state.Query {
			events.UI.MenuCursor(string(next.Menu), next.Selected)
		} else {
			events.UI.MenuEnter(string(next.Menu), next.Selected, m.selectedDescription())
		}
		return m.enterState(next)
	case menu.IntentInvoke:
		return m.invoke(intent.Action)
	default:
		events.UI.Redraw(string(m.state.Menu), keyMsg.String())
		return m.enterState(m.state)
	}
}

func (m *Model) selectedDescription() string {
	if m.state.Selected < 1 || m.state.Selected > len(m.entries) {
		return ""
	}
	return m.entries[m.state.Selected-1].Description
}

// highlight returns the 1-based ledger position the list view should mark.
func (m *Model) highlight() int {
	switch m.state.Menu {
	case menu.Edit:
		if m.state.Selected <= m.ledger.Len() {
			return m.state.Selected
		}
	case menu.Item, menu.Delete:
		if m.state.Target >= 0 {
			return m.state.Target + 1
		}
	}
	return 0
}
