package ui

import (
	"github.com/atomicstack/trackmoney/internal/entry"
	tea "github.com/charmbracelet/bubbletea"
)

// startForm switches to guided entry. commit runs once every prompt has
// validated and returns the state to show next; abandoning the form
// re-enters fallback without calling it.
func (m *Model) startForm(kind entry.Kind, current entry.Values, fallback ViewState, commit func(entry.Values) (ViewState, error)) tea.Cmd {
	m.form = entry.New(kind, current)
	m.pending = commit
	m.fallback = fallback
	m.mode = ModeEntry
	return tea.Batch(tea.ClearScreen, tea.ShowCursor)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.form == nil {
		return m.enterState(m.state)
	}
	if msg.String() == "ctrl+c" {
		m.form = nil
		m.pending = nil
		return m.quit()
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		return m.enterState(m.fallback)
	}
	if !done {
		return cmd
	}
	values := m.form.Values()
	commit := m.pending
	if commit == nil {
		return m.enterState(m.fallback)
	}
	next, err := commit(values)
	if err != nil {
		return m.fail(err)
	}
	return m.enterState(next)
}
