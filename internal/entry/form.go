// Package entry implements the guided prompt sequences used to add and edit
// records. Each prompt is re-asked until its input validates; typing exit,
// q or quit at any prompt abandons the whole sequence.
package entry

import (
	"fmt"
	"strconv"
	"time"

	"github.com/atomicstack/trackmoney/internal/format"
	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/logging/events"
	"github.com/atomicstack/trackmoney/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// Kind selects which prompts a form asks.
type Kind string

const (
	KindAddIncome  Kind = "add:income"
	KindAddExpense Kind = "add:expense"
	KindEditTitle  Kind = "edit:title"
	KindEditAmount Kind = "edit:amount"
	KindEditDate   Kind = "edit:date"
	KindSearch     Kind = "list:search"
)

// Field names one prompt.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAmount Field = "amount"
	FieldMonth  Field = "month"
	FieldYear   Field = "year"
	FieldQuery  Field = "query"
)

// Values holds what the user entered so far.
type Values struct {
	Title  string
	Amount int64
	Month  int
	Year   int
	Query  string
}

// Date returns the month the values name.
func (v Values) Date() (time.Time, error) {
	return ledger.Month(v.Year, v.Month)
}

type step struct {
	field  Field
	prompt string
	accept func(input string, v *Values) error
}

var (
	titleStep = step{FieldTitle, "Enter a title", func(in string, v *Values) (err error) {
		v.Title, err = ParseTitle(in)
		return err
	}}
	amountStep = step{FieldAmount, "Enter an amount", func(in string, v *Values) (err error) {
		v.Amount, err = ParseAmount(in)
		return err
	}}
	monthStep = step{FieldMonth, "Enter a month (1-12)", func(in string, v *Values) (err error) {
		v.Month, err = ParseMonth(in)
		return err
	}}
	yearStep = step{FieldYear, "Enter a year", func(in string, v *Values) (err error) {
		v.Year, err = ParseYear(in, v.Month)
		return err
	}}
	queryStep = step{FieldQuery, "Search titles (leave empty to show all)", func(in string, v *Values) error {
		v.Query = in
		return nil
	}}
)

func stepsFor(kind Kind) []step {
	switch kind {
	case KindAddIncome, KindAddExpense:
		return []step{titleStep, amountStep, monthStep, yearStep}
	case KindEditTitle:
		return []step{titleStep}
	case KindEditAmount:
		return []step{amountStep}
	case KindEditDate:
		return []step{monthStep, yearStep}
	case KindSearch:
		return []step{queryStep}
	}
	return nil
}

// Form walks the user through the prompts of one Kind.
type Form struct {
	kind   Kind
	title  string
	steps  []step
	index  int
	values Values
	input  textinput.Model
	err    string
}

// New returns a form for kind. current seeds the placeholders when editing.
func New(kind Kind, current Values) *Form {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Prompt = "> "
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	if styles.Input != nil {
		ti.TextStyle = *styles.Input
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = *styles.Placeholder
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	f := &Form{
		kind:   kind,
		title:  formTitle(kind),
		steps:  stepsFor(kind),
		values: current,
		input:  ti,
	}
	f.enterStep()
	return f
}

func formTitle(kind Kind) string {
	switch kind {
	case KindAddIncome:
		return "Add New Income"
	case KindAddExpense:
		return "Add New Expense"
	case KindEditTitle:
		return "Edit Title"
	case KindEditAmount:
		return "Edit Amount"
	case KindEditDate:
		return "Edit Month and Year"
	case KindSearch:
		return "Search by Title"
	}
	return string(kind)
}

func (f *Form) Kind() Kind        { return f.kind }
func (f *Form) Title() string     { return f.title }
func (f *Form) Values() Values    { return f.values }
func (f *Form) Error() string     { return f.err }
func (f *Form) InputView() string { return f.input.View() }
func (f *Form) Help() string      { return "Press Enter to confirm. Type q, quit or exit to go back." }

// Step reports the 1-based prompt number and the prompt count.
func (f *Form) Step() (int, int) { return f.index + 1, len(f.steps) }

// Field returns the field currently being asked for.
func (f *Form) Field() Field {
	if f.index >= len(f.steps) {
		return ""
	}
	return f.steps[f.index].field
}

// Prompt returns the text asking for the current field.
func (f *Form) Prompt() string {
	if f.index >= len(f.steps) {
		return ""
	}
	return f.steps[f.index].prompt
}

func (f *Form) enterStep() {
	f.input.SetValue("")
	f.input.Placeholder = f.placeholder()
	events.Entry.Prompt(string(f.kind), string(f.Field()))
}

// placeholder shows the value being replaced when editing.
func (f *Form) placeholder() string {
	switch f.Field() {
	case FieldTitle:
		return f.values.Title
	case FieldAmount:
		if f.kind == KindEditAmount {
			return strconv.FormatInt(f.values.Amount, 10)
		}
	case FieldMonth:
		if f.values.Month > 0 {
			return strconv.Itoa(f.values.Month)
		}
	case FieldYear:
		if f.values.Year > 0 {
			return strconv.Itoa(f.values.Year)
		}
	case FieldQuery:
		return f.values.Query
	}
	return ""
}

// Update feeds msg to the form. done is true once every prompt validated;
// cancel is true when the user abandoned the sequence.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.Type {
		case tea.KeyEsc:
			events.Entry.Cancel(string(f.kind), string(f.Field()), events.EntryReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			return f.submit()
		}
		if m.String() == "ctrl+u" {
			f.input.SetValue("")
			f.input.CursorStart()
			return nil, false, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (f *Form) submit() (tea.Cmd, bool, bool) {
	raw := f.input.Value()
	if IsQuit(raw) {
		events.Entry.Cancel(string(f.kind), string(f.Field()), events.EntryReasonSentinel)
		return nil, false, true
	}
	if f.index >= len(f.steps) {
		return nil, true, false
	}
	if err := f.steps[f.index].accept(raw, &f.values); err != nil {
		f.err = err.Error()
		events.Entry.Invalid(string(f.kind), string(f.Field()), f.err)
		f.input.SetValue("")
		return nil, false, false
	}
	f.err = ""
	f.index++
	if f.index < len(f.steps) {
		f.enterStep()
		return nil, false, false
	}
	events.Entry.Submit(string(f.kind), f.summary())
	return nil, true, false
}

func (f *Form) summary() map[string]string {
	out := make(map[string]string, len(f.steps))
	for _, s := range f.steps {
		out[string(s.field)] = f.display(s.field)
	}
	return out
}

func (f *Form) display(field Field) string {
	switch field {
	case FieldTitle:
		return f.values.Title
	case FieldAmount:
		return format.Amount(f.values.Amount, 0)
	case FieldMonth:
		return strconv.Itoa(f.values.Month)
	case FieldYear:
		return strconv.Itoa(f.values.Year)
	case FieldQuery:
		return f.values.Query
	}
	return ""
}

// Answered lists the prompts already accepted, for display above the
// active one.
func (f *Form) Answered() []string {
	lines := make([]string, 0, f.index)
	for i := 0; i < f.index && i < len(f.steps); i++ {
		s := f.steps[i]
		lines = append(lines, fmt.Sprintf("%s: %s", s.prompt, f.display(s.field)))
	}
	return lines
}
