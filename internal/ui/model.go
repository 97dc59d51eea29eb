package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/trackmoney/internal/entry"
	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/menu"
	"github.com/atomicstack/trackmoney/internal/theme"
	"github.com/atomicstack/trackmoney/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the snapshot one frame is drawn from.
type ViewState = menu.State

type Mode int

const (
	ModeMenu Mode = iota
	ModeEntry
	ModeFarewell
)

const (
	appTitle     = "TrackMoney v1.0"
	farewellText = "Thank you for using TrackMoney!"
	defaultWidth = 80
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Width and Height pin the frame size;
// InitialWidth and InitialHeight only seed it until the first resize.
type Options struct {
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	Decimals      int
	// ListQuery is the filter and sort "Show items" starts from.
	ListQuery     ledger.Query
}

// Model implements the Bubble Tea model for TrackMoney.
type Model struct {
	ctx     context.Context
	ledger  *ledger.Ledger
	state   ViewState
	entries []menu.Entry
	mode    Mode

	form     *entry.Form
	pending  func(entry.Values) (ViewState, error)
	fallback ViewState

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	decimals    int
	listQuery   ledger.Query
	err         error

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
}

// NewModel initialises the UI on the main menu.
func NewModel(ctx context.Context, l *ledger.Ledger, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:       ctx,
		ledger:    l,
		registry:  menu.BuildRegistry(),
		bus:       command.New(),
		decimals:  opts.Decimals,
		listQuery: opts.ListQuery,
		width:     defaultWidth,
	}
	if opts.InitialWidth > 0 {
		m.width = opts.InitialWidth
	}
	if opts.InitialHeight > 0 {
		m.height = opts.InitialHeight
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerActions()
	m.registerHandlers()
	m.enterState(menu.Home())
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, tea.HideCursor)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.mode == ModeEntry && m.form != nil {
		cmd, _, _ := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && resize.Width > 0 {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// State returns the ViewState the current frame is drawn from.
func (m *Model) State() ViewState { return m.state }

// Size returns the frame size the view is drawn at.
func (m *Model) Size() (int, int) { return m.width, m.height }

// Mode reports whether a menu, a form or the farewell is shown.
func (m *Model) Mode() Mode { return m.mode }

// Form returns the active guided entry form, if any.
func (m *Model) Form() *entry.Form { return m.form }

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Records returns a copy of the ledger contents.
func (m *Model) Records() []ledger.Record { return m.ledger.Records() }
