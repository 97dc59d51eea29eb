package menu

import (
	"github.com/atomicstack/trackmoney/internal/format"
	"github.com/atomicstack/trackmoney/internal/format/table"
	"github.com/atomicstack/trackmoney/internal/ledger"
)

// Context carries the runtime data loaders build entries from.
type Context struct {
	State     State
	Records   []ledger.Record
	Decimals  int
	// ListQuery is the query "Show items" opens the list with.
	ListQuery ledger.Query
}

// Loader returns the entries of one menu.
type Loader func(Context) []Entry

// Registry maps menu IDs to their loaders.
type Registry struct {
	loaders map[ID]Loader
}

// BuildRegistry wires every menu.
func BuildRegistry() *Registry {
	return &Registry{loaders: map[ID]Loader{
		Main:   loadMain,
		List:   loadList,
		Sort:   loadSort,
		Add:    loadAdd,
		Edit:   loadEdit,
		Item:   loadItem,
		Delete: loadDelete,
	}}
}

// Entries builds the entries for ctx.State.Menu.
func (r *Registry) Entries(ctx Context) ([]Entry, bool) {
	loader, ok := r.loaders[ctx.State.Menu]
	if !ok {
		return nil, false
	}
	return loader(ctx), true
}

func listState(selected int, subheading string, q ledger.Query) State {
	return State{Menu: List, Selected: selected, Subheading: subheading, Scene: SceneList, Query: q, Target: NoTarget}
}

// ShowAll is the list menu with no filter or sort.
func ShowAll() State {
	return listState(1, FilterHeading(ledger.FilterAll), ledger.Query{})
}

// FilterHeading is the list subheading for a type filter.
func FilterHeading(f ledger.Filter) string {
	switch f {
	case ledger.FilterIncomes:
		return "Show Incomes"
	case ledger.FilterExpenses:
		return "Show Expenses"
	default:
		return "Show All Items"
	}
}

// EditList is the record picker with the given record selected.
func EditList(selected int) State {
	return State{Menu: Edit, Selected: selected, Subheading: "Edit Item (edit, remove)", Scene: SceneList, Target: NoTarget}
}

// ItemState is the field menu for the record at target.
func ItemState(target, selected int, records []ledger.Record) State {
	sub := "Edit Item"
	if target >= 0 && target < len(records) {
		sub = "Edit Item: " + records[target].Title
	}
	return State{Menu: Item, Selected: selected, Subheading: sub, Scene: SceneList, Target: target}
}

func backToMain() Entry {
	return Entry{Description: "<< Go back to the main menu", Intent: Enter(Home())}
}

func loadMain(ctx Context) []Entry {
	return []Entry{
		{Description: "Show items (All / Expense(s) / Income(s))", Intent: Enter(listState(1, "Show Items", ctx.ListQuery))},
		{Description: "Add New Expense / Income", Intent: Enter(State{Menu: Add, Selected: 1, Subheading: "Add New Expense / Income", Target: NoTarget})},
		{Description: "Edit Item (edit, remove)", Intent: Enter(EditList(1))},
		{Description: "Save and Quit", Intent: Invoke(ActionQuit)},
	}
}

func loadList(ctx Context) []Entry {
	sorted := ledger.Query{Filter: ctx.State.Query.Filter, Sort: ledger.SortDate, Direction: ledger.Descending}
	sortState := State{Menu: Sort, Selected: 1, Subheading: "Sorted by month (Newest first)", Scene: SceneList, Query: sorted, Target: NoTarget}
	return []Entry{
		{Description: "Sort list by columns", Intent: Enter(sortState)},
		{Description: "Show all items", Intent: Enter(listState(2, FilterHeading(ledger.FilterAll), ledger.Query{}))},
		{Description: "Show expenses only", Intent: Enter(listState(3, FilterHeading(ledger.FilterExpenses), ledger.Query{Filter: ledger.FilterExpenses}))},
		{Description: "Show incomes only", Intent: Enter(listState(4, FilterHeading(ledger.FilterIncomes), ledger.Query{Filter: ledger.FilterIncomes}))},
		{Description: "Search by title", Intent: Invoke(ActionSearch)},
		backToMain(),
	}
}

type sortOption struct {
	description string
	subheading  string
	key         ledger.SortKey
	direction   ledger.Direction
}

var sortOptions = []sortOption{
	{"Sort by month (Newest first)", "Sorted by month (Newest first)", ledger.SortDate, ledger.Descending},
	{"Sort by month (Oldest first)", "Sorted by month (Oldest first)", ledger.SortDate, ledger.Ascending},
	{"Sort by amount (Highest first)", "Sorted by amount (Highest first)", ledger.SortAmount, ledger.Descending},
	{"Sort by amount (Lowest first)", "Sorted by amount (Lowest first)", ledger.SortAmount, ledger.Ascending},
	{"Sort by title (Ascending)", "Sorted by title (A => Z)", ledger.SortTitle, ledger.Ascending},
	{"Sort by title (Descending)", "Sorted by title (Z => A)", ledger.SortTitle, ledger.Descending},
}

func loadSort(ctx Context) []Entry {
	entries := make([]Entry, 0, len(sortOptions)+1)
	for i, opt := range sortOptions {
		q := ledger.Query{Filter: ctx.State.Query.Filter, Sort: opt.key, Direction: opt.direction}
		entries = append(entries, Entry{
			Description: opt.description,
			Intent: Enter(State{
				Menu: Sort, Selected: i + 1, Subheading: opt.subheading,
				Scene: SceneList, Query: q, Target: NoTarget,
			}),
		})
	}
	return append(entries, Entry{Description: "<< Go back to menu", Intent: Enter(ShowAll())})
}

func loadAdd(Context) []Entry {
	return []Entry{
		{Description: "Add a new income", Intent: Invoke(ActionAddIncome)},
		{Description: "Add a new expense", Intent: Invoke(ActionAddExpense)},
		backToMain(),
	}
}

// loadEdit lists one entry per record in ledger order.
func loadEdit(ctx Context) []Entry {
	rows := make([][]string, len(ctx.Records))
	for i, r := range ctx.Records {
		rows[i] = []string{r.Title, format.MonthYear(r.Date), format.Amount(r.Amount, ctx.Decimals)}
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
	entries := make([]Entry, 0, len(ctx.Records)+1)
	for i := range ctx.Records {
		entries = append(entries, Entry{
			Description: labels[i],
			Intent:      Enter(ItemState(i, 1, ctx.Records)),
		})
	}
	return append(entries, backToMain())
}

func loadItem(ctx Context) []Entry {
	target := ctx.State.Target
	back := Entry{Description: "<< Go back to the item list", Intent: Enter(EditList(target + 1))}
	if target < 0 || target >= len(ctx.Records) {
		back.Intent = Enter(EditList(1))
		return []Entry{back}
	}
	confirm := State{
		Menu: Delete, Selected: 2, Subheading: "Delete " + ctx.Records[target].Title + "?",
		Scene: SceneList, Target: target,
	}
	return []Entry{
		{Description: "Edit title", Intent: Invoke(ActionEditTitle)},
		{Description: "Edit amount", Intent: Invoke(ActionEditAmount)},
		{Description: "Edit month and year", Intent: Invoke(ActionEditDate)},
		{Description: "Delete item", Intent: Enter(confirm)},
		back,
	}
}

func loadDelete(ctx Context) []Entry {
	return []Entry{
		{Description: "Yes, delete it", Intent: Invoke(ActionDelete)},
		{Description: "No, keep it", Intent: Enter(ItemState(ctx.State.Target, 4, ctx.Records))},
	}
}
