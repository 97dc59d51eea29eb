package ledger

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter selects records by type.
type Filter int

const (
	FilterAll Filter = iota
	FilterIncomes
	FilterExpenses
)

// ParseFilter maps the names all, incomes and expenses to a Filter.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return FilterAll, nil
	case "incomes", "income":
		return FilterIncomes, nil
	case "expenses", "expense":
		return FilterExpenses, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q", name)
}

func (f Filter) String() string {
	switch f {
	case FilterIncomes:
		return "incomes"
	case FilterExpenses:
		return "expenses"
	default:
		return "all"
	}
}

// Keep reports whether r passes the filter. Zero amounts only pass FilterAll.
func (f Filter) Keep(r Record) bool {
	switch f {
	case FilterIncomes:
		return r.Amount > 0
	case FilterExpenses:
		return r.Amount < 0
	default:
		return true
	}
}

// SortKey names the record field used to order rows.
type SortKey int

const (
	SortNone SortKey = iota
	SortDate
	SortAmount
	SortTitle
)

// ParseSortKey resolves a field name. Unknown names are rejected here so the
// sort itself never sees them.
func ParseSortKey(name string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return SortNone, nil
	case "date", "month":
		return SortDate, nil
	case "amount":
		return SortAmount, nil
	case "title":
		return SortTitle, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", name)
}

func (k SortKey) String() string {
	switch k {
	case SortDate:
		return "date"
	case SortAmount:
		return "amount"
	case SortTitle:
		return "title"
	default:
		return ""
	}
}

func (k SortKey) compare() func(a, b Record) int {
	switch k {
	case SortDate:
		return func(a, b Record) int { return cmp.Compare(monthIndex(a.Date), monthIndex(b.Date)) }
	case SortAmount:
		return func(a, b Record) int { return cmp.Compare(a.Amount, b.Amount) }
	case SortTitle:
		return func(a, b Record) int { return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	}
	return nil
}

// Direction orders sorted rows.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseDirection maps asc/ascending and desc/descending to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q", name)
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Query describes which rows to show and in which order.
type Query struct {
	Filter    Filter
	Sort      SortKey
	Direction Direction
	Title     string
}

// Row is a record paired with its position in the ledger.
type Row struct {
	Index  int
	Record Record
}

// Select applies q to records. Without a sort key rows keep ledger order;
// with one the sort is stable so equal keys keep ledger order too.
func Select(records []Record, q Query) []Row {
	needle := strings.TrimSpace(q.Title)
	rows := make([]Row, 0, len(records))
	for i, r := range records {
		if !q.Filter.Keep(r) {
			continue
		}
		if needle != "" && !fuzzy.MatchNormalizedFold(needle, r.Title) {
			continue
		}
		rows = append(rows, Row{Index: i, Record: r})
	}
	compare := q.Sort.compare()
	if compare == nil {
		return rows
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		c := compare(a.Record, b.Record)
		if q.Direction == Descending {
			return -c
		}
		return c
	})
	return rows
}

// Balance sums every record amount.
func Balance(records []Record) int64 {
	var sum int64
	for _, r := range records {
		sum += r.Amount
	}
	return sum
}
