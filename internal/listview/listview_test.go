package listview

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/panel"
	"github.com/charmbracelet/x/ansi"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func render(records []ledger.Record, opts Options) []string {
	s := panel.NewSurface(100)
	Render(s, records, opts)
	return strings.Split(strings.TrimSuffix(ansi.Strip(s.String()), "\n"), "\n")
}

// dataRows returns the interior lines between the two rules.
func dataRows(t *testing.T, out []string) []string {
	t.Helper()
	var rules []int
	for i, line := range out {
		if strings.HasPrefix(strings.TrimSpace(line), "│") && strings.Contains(line, "──────") {
			rules = append(rules, i)
		}
	}
	if len(rules) != 2 {
		t.Fatalf("expected two rules, got %d in:\n%s", len(rules), strings.Join(out, "\n"))
	}
	return out[rules[0]+1 : rules[1]]
}

func TestIncomesScenario(t *testing.T) {
	records := []ledger.Record{
		{Date: month(2024, time.January), Title: "Salary", Amount: 25000},
		{Date: month(2024, time.January), Title: "Rent", Amount: -8000},
	}
	out := render(records, Options{Query: ledger.Query{Filter: ledger.FilterIncomes}})
	rows := dataRows(t, out)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d:\n%s", len(rows), strings.Join(rows, "\n"))
	}
	for _, want := range []string{"Income", "January 2024", "Salary", "25,000"} {
		if !strings.Contains(rows[0], want) {
			t.Fatalf("expected row to contain %q: %q", want, rows[0])
		}
	}
	joined := strings.Join(out, "\n")
	if strings.Contains(joined, "Rent") {
		t.Fatalf("expense leaked into incomes view:\n%s", joined)
	}
	if !strings.Contains(joined, "Balance: 17,000") {
		t.Fatalf("expected balance over all records:\n%s", joined)
	}
}

func TestHeaderColumns(t *testing.T) {
	out := render(nil, Options{})
	header := out[2]
	for _, name := range []string{"Type", "Month", "Title", "Amount"} {
		if !strings.Contains(header, name) {
			t.Fatalf("expected header to contain %q: %q", name, header)
		}
	}
	if strings.Index(header, "Month")-strings.Index(header, "Type") != 15 {
		t.Fatalf("expected Type column to be 14 wide: %q", header)
	}
	if strings.Index(header, "Title")-strings.Index(header, "Month") != 17 {
		t.Fatalf("expected Month column to be 16 wide: %q", header)
	}
}

func TestEmptyLedgerRendersZeroBalance(t *testing.T) {
	out := render(nil, Options{})
	if rows := dataRows(t, out); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
	if !strings.Contains(strings.Join(out, "\n"), "Balance: 0") {
		t.Fatalf("expected zero balance")
	}
}

func TestSortDescendingByAmount(t *testing.T) {
	records := []ledger.Record{
		{Date: month(2024, time.January), Title: "small", Amount: 10},
		{Date: month(2024, time.January), Title: "big", Amount: 500},
		{Date: month(2024, time.January), Title: "negative", Amount: -20},
	}
	rows := dataRows(t, render(records, Options{Query: ledger.Query{Sort: ledger.SortAmount, Direction: ledger.Descending}}))
	want := []string{"big", "small", "negative"}
	for i, title := range want {
		if !strings.Contains(rows[i], title) {
			t.Fatalf("row %d: expected %q, got %q", i, title, rows[i])
		}
	}
}

func TestZeroAmountOnlyInAll(t *testing.T) {
	records := []ledger.Record{{Date: month(2024, time.March), Title: "Nothing", Amount: 0}}
	if rows := dataRows(t, render(records, Options{})); len(rows) != 1 || !strings.Contains(rows[0], "None") {
		t.Fatalf("expected zero record labelled None, got %v", rows)
	}
	if rows := dataRows(t, render(records, Options{Query: ledger.Query{Filter: ledger.FilterExpenses}})); len(rows) != 0 {
		t.Fatalf("expected zero record hidden from expenses, got %v", rows)
	}
}

func TestTitleQueryKeepsFullBalance(t *testing.T) {
	records := []ledger.Record{
		{Date: month(2024, time.January), Title: "Salary", Amount: 25000},
		{Date: month(2024, time.January), Title: "Rent", Amount: -8000},
	}
	out := render(records, Options{Query: ledger.Query{Title: "rent"}})
	rows := dataRows(t, out)
	if len(rows) != 1 || !strings.Contains(rows[0], "Rent") {
		t.Fatalf("expected only Rent, got %v", rows)
	}
	if !strings.Contains(strings.Join(out, "\n"), "Balance: 17,000") {
		t.Fatalf("expected balance to ignore the title query")
	}
}

func TestHighlightKeepsRowText(t *testing.T) {
	records := []ledger.Record{
		{Date: month(2024, time.January), Title: "Salary", Amount: 25000},
		{Date: month(2024, time.January), Title: "Rent", Amount: -8000},
	}
	plain := dataRows(t, render(records, Options{}))
	lit := dataRows(t, render(records, Options{Highlight: 2}))
	if strings.Join(plain, "\n") != strings.Join(lit, "\n") {
		t.Fatalf("highlight changed row text:\n%s\n---\n%s", plain, lit)
	}
}

func TestCellsTruncatesLongTitles(t *testing.T) {
	r := ledger.Record{Date: month(2024, time.May), Title: strings.Repeat("x", 40), Amount: -1}
	row := cells(columns, r, 0)
	if !strings.Contains(row, strings.Repeat("x", 23)+"…") {
		t.Fatalf("expected truncated title, got %q", row)
	}
	if strings.Contains(row, strings.Repeat("x", 24)) {
		t.Fatalf("title was not truncated: %q", row)
	}
}

func TestWideAmountsWidenTheTable(t *testing.T) {
	records := []ledger.Record{
		{Date: month(2024, time.January), Title: "House", Amount: -1234567890},
		{Date: month(2024, time.February), Title: "Coffee", Amount: -3},
	}
	out := render(records, Options{})
	rows := dataRows(t, out)
	if len(rows) != 2 || !strings.Contains(rows[0], "-1,234,567,890 ") {
		t.Fatalf("expected full amount in row, got %v", rows)
	}
	for _, line := range out {
		if strings.Contains(line, "…") {
			t.Fatalf("expected no truncation:\n%s", strings.Join(out, "\n"))
		}
	}
	if !strings.Contains(strings.Join(out, "\n"), "Balance: -1,234,567,893") {
		t.Fatalf("expected full balance:\n%s", strings.Join(out, "\n"))
	}
	width := len([]rune(out[2]))
	for i, line := range out[1 : len(out)-1] {
		if got := len([]rune(line)); got != width {
			t.Fatalf("line %d is %d wide, want %d:\n%s", i+1, got, width, strings.Join(out, "\n"))
		}
	}
}
