package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/trackmoney/internal/entry"
	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/logging"
	"github.com/atomicstack/trackmoney/internal/logging/events"
	"github.com/atomicstack/trackmoney/internal/menu"
	"github.com/atomicstack/trackmoney/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) registerActions() {
	m.bus.Register(menu.ActionQuit, m.quit)
	m.bus.Register(menu.ActionSearch, m.startSearch)
	m.bus.Register(menu.ActionAddIncome, func() tea.Cmd { return m.startAdd(ledger.KindIncome) })
	m.bus.Register(menu.ActionAddExpense, func() tea.Cmd { return m.startAdd(ledger.KindExpense) })
	m.bus.Register(menu.ActionEditTitle, m.startEditTitle)
	m.bus.Register(menu.ActionEditAmount, m.startEditAmount)
	m.bus.Register(menu.ActionEditDate, m.startEditDate)
	m.bus.Register(menu.ActionDelete, m.deleteTarget)
}

func (m *Model) invoke(action menu.Action) tea.Cmd {
	cmd, err := m.bus.Execute(command.Request{Action: action, Target: m.state.Target})
	if err != nil {
		logging.Error(err)
		return m.enterState(m.state)
	}
	return cmd
}

// fail records a fatal error and stops the program.
func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	logging.Error(err)
	events.Action.Error(err)
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	if err := m.ledger.Save(m.ctx); err != nil {
		return m.fail(err)
	}
	events.App.Quit(m.ledger.Len())
	m.mode = ModeFarewell
	m.form = nil
	m.pending = nil
	return tea.Quit
}

func (m *Model) target() (ledger.Record, bool) {
	r, err := m.ledger.At(m.state.Target)
	return r, err == nil
}

func (m *Model) deleteTarget() tea.Cmd {
	r, ok := m.target()
	if !ok {
		return m.enterState(menu.EditList(1))
	}
	if err := m.ledger.Delete(m.ctx, m.state.Target); err != nil {
		return m.fail(err)
	}
	events.Action.Success(fmt.Sprintf("deleted %s", r.Title))
	next := menu.EditList(min(m.state.Target+1, m.ledger.Len()))
	next.Subheading = fmt.Sprintf("Deleted %s", r.Title)
	return m.enterState(next)
}

func (m *Model) startSearch() tea.Cmd {
	fallback := m.state
	return m.startForm(entry.KindSearch, entry.Values{Query: m.state.Query.Title}, fallback,
		func(v entry.Values) (ViewState, error) {
			next := fallback
			next.Query.Title = v.Query
			next.Subheading = menu.FilterHeading(fallback.Query.Filter)
			if v.Query != "" {
				next.Subheading = fmt.Sprintf("Titles matching %q", v.Query)
			}
			return next, nil
		})
}

func (m *Model) startAdd(kind ledger.Kind) tea.Cmd {
	formKind := entry.KindAddIncome
	if kind == ledger.KindExpense {
		formKind = entry.KindAddExpense
	}
	return m.startForm(formKind, entry.Values{}, m.state, func(v entry.Values) (ViewState, error) {
		date, err := v.Date()
		if err != nil {
			return ViewState{}, err
		}
		r := ledger.Record{Date: date, Title: v.Title, Amount: ledger.SignedAmount(kind, v.Amount)}
		if err := m.ledger.Add(m.ctx, r); err != nil {
			return ViewState{}, err
		}
		next := menu.ShowAll()
		next.Subheading = fmt.Sprintf("Added %s: %s", strings.ToLower(kind.String()), r.Title)
		return next, nil
	})
}

// itemDone returns to the field menu for the target with the edited field
// still selected.
func (m *Model) itemDone(target, selected int, field string) ViewState {
	next := menu.ItemState(target, selected, m.ledger.Records())
	next.Subheading = fmt.Sprintf("%s updated", field)
	return next
}

func (m *Model) startEditTitle() tea.Cmd {
	r, ok := m.target()
	if !ok {
		return m.enterState(menu.EditList(1))
	}
	target := m.state.Target
	return m.startForm(entry.KindEditTitle, entry.Values{Title: r.Title}, m.state, func(v entry.Values) (ViewState, error) {
		if err := m.ledger.SetTitle(m.ctx, target, v.Title); err != nil {
			return ViewState{}, err
		}
		return m.itemDone(target, 1, "Title"), nil
	})
}

func (m *Model) startEditAmount() tea.Cmd {
	r, ok := m.target()
	if !ok {
		return m.enterState(menu.EditList(1))
	}
	target := m.state.Target
	return m.startForm(entry.KindEditAmount, entry.Values{Amount: r.Amount}, m.state, func(v entry.Values) (ViewState, error) {
		if err := m.ledger.SetAmount(m.ctx, target, ledger.SignedAmount(r.Kind(), v.Amount)); err != nil {
			return ViewState{}, err
		}
		return m.itemDone(target, 2, "Amount"), nil
	})
}

func (m *Model) startEditDate() tea.Cmd {
	r, ok := m.target()
	if !ok {
		return m.enterState(menu.EditList(1))
	}
	target := m.state.Target
	current := entry.Values{Month: int(r.Date.Month()), Year: r.Date.Year()}
	return m.startForm(entry.KindEditDate, current, m.state, func(v entry.Values) (ViewState, error) {
		date, err := v.Date()
		if err != nil {
			return ViewState{}, err
		}
		if err := m.ledger.SetDate(m.ctx, target, date); err != nil {
			return ViewState{}, err
		}
		return m.itemDone(target, 3, "Month and year"), nil
	})
}
