// Package menu defines the application's menus and the selection state
// machine that turns a key press into an Intent. The package never performs
// side effects; the caller applies the returned Intent.
package menu

import "github.com/atomicstack/trackmoney/internal/ledger"

// ID names a menu. Nested menus use colon separated paths.
type ID string

const (
	Main   ID = "main"
	List   ID = "list"
	Sort   ID = "list:sort"
	Add    ID = "add"
	Edit   ID = "edit"
	Item   ID = "edit:item"
	Delete ID = "edit:item:delete"
)

// Scene is the view drawn between the header and the menu.
type Scene int

const (
	SceneNone Scene = iota
	SceneList
)

// NoTarget marks a state that is not bound to a ledger record.
const NoTarget = -1

// State is everything needed to draw one frame. It is rebuilt for every
// transition and passed by value.
type State struct {
	Menu       ID
	Selected   int
	Subheading string
	Scene      Scene
	Query      ledger.Query
	// Target is the ledger position being edited, or NoTarget.
	Target int
}

// Home is the state shown at startup and after every completed action that
// does not name another destination.
func Home() State {
	return State{Menu: Main, Selected: 1, Subheading: "Main Menu", Target: NoTarget}
}

// Action names a side effect the controller performs.
type Action string

const (
	ActionQuit       Action = "quit"
	ActionSearch     Action = "list:search"
	ActionAddIncome  Action = "add:income"
	ActionAddExpense Action = "add:expense"
	ActionEditTitle  Action = "edit:title"
	ActionEditAmount Action = "edit:amount"
	ActionEditDate   Action = "edit:date"
	ActionDelete     Action = "edit:delete"
)

// IntentKind tags an Intent.
type IntentKind int

const (
	IntentRedraw IntentKind = iota
	IntentEnter
	IntentInvoke
)

func (k IntentKind) String() string {
	switch k {
	case IntentEnter:
		return "enter"
	case IntentInvoke:
		return "invoke"
	default:
		return "redraw"
	}
}

// Intent is the outcome of a key press: enter a new state, invoke a named
// action, or redraw the current frame.
type Intent struct {
	Kind   IntentKind
	State  State
	Action Action
}

// Enter transitions to s.
func Enter(s State) Intent { return Intent{Kind: IntentEnter, State: s} }

// Invoke runs a.
func Invoke(a Action) Intent { return Intent{Kind: IntentInvoke, Action: a} }

// Redraw repaints the current state unchanged.
func Redraw() Intent { return Intent{Kind: IntentRedraw} }

// Entry is one numbered menu line.
type Entry struct {
	Description string
	Intent      Intent
}

// Wrap corrects a 1-based selection for a menu of count entries: values
// below the first entry select the last, values past the last select the
// first.
func Wrap(selected, count int) int {
	if count <= 0 {
		return 0
	}
	if selected < 1 {
		return count
	}
	if selected > count {
		return 1
	}
	return selected
}
