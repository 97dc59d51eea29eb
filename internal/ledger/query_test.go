package ledger

import (
	"math"
	"testing"
	"time"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []Record {
	return []Record{
		{Date: month(2024, time.March), Title: "Salary Mar", Amount: 25000},
		{Date: month(2024, time.January), Title: "rent", Amount: -8000},
		{Date: month(2024, time.February), Title: "Loan", Amount: 15000},
		{Date: month(2024, time.January), Title: "Gift card", Amount: 0},
		{Date: month(2024, time.February), Title: "Bicycle", Amount: -1500},
		{Date: month(2024, time.March), Title: "Shopping", Amount: -2345},
	}
}

func TestSelectFilterClassification(t *testing.T) {
	records := sampleRecords()
	cases := []struct {
		filter Filter
		want   int
		keep   func(Record) bool
	}{
		{FilterAll, 6, func(Record) bool { return true }},
		{FilterIncomes, 2, func(r Record) bool { return r.Amount > 0 }},
		{FilterExpenses, 3, func(r Record) bool { return r.Amount < 0 }},
	}
	for _, tc := range cases {
		rows := Select(records, Query{Filter: tc.filter})
		if len(rows) != tc.want {
			t.Fatalf("%s: expected %d rows, got %d", tc.filter, tc.want, len(rows))
		}
		for _, row := range rows {
			if !tc.keep(row.Record) {
				t.Fatalf("%s: row %q does not match filter", tc.filter, row.Record.Title)
			}
		}
	}
}

func TestSelectWithoutSortKeepsLedgerOrder(t *testing.T) {
	rows := Select(sampleRecords(), Query{Filter: FilterExpenses})
	want := []int{1, 4, 5}
	for i, idx := range want {
		if rows[i].Index != idx {
			t.Fatalf("row %d: expected ledger index %d, got %d", i, idx, rows[i].Index)
		}
	}
}

func TestSelectSortIsOrderedAndStable(t *testing.T) {
	records := sampleRecords()
	for _, key := range []SortKey{SortDate, SortAmount, SortTitle} {
		compare := key.compare()
		for _, dir := range []Direction{Ascending, Descending} {
			rows := Select(records, Query{Sort: key, Direction: dir})
			if len(rows) != len(records) {
				t.Fatalf("%s/%s: expected %d rows, got %d", key, dir, len(records), len(rows))
			}
			for i := 1; i < len(rows); i++ {
				c := compare(rows[i-1].Record, rows[i].Record)
				if dir == Descending {
					c = -c
				}
				if c > 0 {
					t.Fatalf("%s/%s: rows %d and %d out of order", key, dir, i-1, i)
				}
				if c == 0 && rows[i-1].Index > rows[i].Index {
					t.Fatalf("%s/%s: tie between %d and %d not stable", key, dir, rows[i-1].Index, rows[i].Index)
				}
			}
		}
	}
}

func TestSelectSortByDateDescendingTies(t *testing.T) {
	rows := Select(sampleRecords(), Query{Sort: SortDate, Direction: Descending})
	want := []int{0, 5, 2, 4, 1, 3}
	for i, idx := range want {
		if rows[i].Index != idx {
			t.Fatalf("row %d: expected ledger index %d, got %d", i, idx, rows[i].Index)
		}
	}
}

func TestSelectSortByTitleIgnoresCase(t *testing.T) {
	rows := Select(sampleRecords(), Query{Sort: SortTitle})
	want := []string{"Bicycle", "Gift card", "Loan", "rent", "Salary Mar", "Shopping"}
	for i, title := range want {
		if rows[i].Record.Title != title {
			t.Fatalf("row %d: expected %q, got %q", i, title, rows[i].Record.Title)
		}
	}
}

func TestSelectTitleQueryUsesFuzzyMatch(t *testing.T) {
	rows := Select(sampleRecords(), Query{Title: "SLRY"})
	if len(rows) != 1 || rows[0].Record.Title != "Salary Mar" {
		t.Fatalf("expected fuzzy match on Salary Mar, got %#v", rows)
	}
	if rows := Select(sampleRecords(), Query{Title: "zzz"}); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestBalanceIgnoresFilter(t *testing.T) {
	records := []Record{
		{Date: month(2024, time.January), Title: "Salary", Amount: 25000},
		{Date: month(2024, time.January), Title: "Rent", Amount: -8000},
	}
	rows := Select(records, Query{Filter: FilterIncomes})
	if len(rows) != 1 || rows[0].Record.Title != "Salary" || rows[0].Record.Amount != 25000 {
		t.Fatalf("expected only the Salary row, got %#v", rows)
	}
	if got := Balance(records); got != 17000 {
		t.Fatalf("expected balance 17000, got %d", got)
	}
	if got := Balance(nil); got != 0 {
		t.Fatalf("expected zero balance for empty ledger, got %d", got)
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{"": SortNone, "date": SortDate, "Month": SortDate, "AMOUNT": SortAmount, " title ": SortTitle}
	for in, want := range cases {
		got, err := ParseSortKey(in)
		if err != nil || got != want {
			t.Fatalf("ParseSortKey(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSortKey("colour"); err == nil {
		t.Fatalf("expected error for unknown sort key")
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{"": FilterAll, "all": FilterAll, "Incomes": FilterIncomes, "expenses": FilterExpenses}
	for in, want := range cases {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Fatalf("ParseFilter(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFilter("debts"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"": Ascending, "asc": Ascending, "DESC": Descending, " descending ": Descending}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(KindExpense, 150); got != -150 {
		t.Fatalf("expected -150, got %d", got)
	}
	if got := SignedAmount(KindExpense, -150); got != -150 {
		t.Fatalf("expected -150, got %d", got)
	}
	if got := SignedAmount(KindIncome, -90); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
	if got := SignedAmount(KindNone, -90); got != -90 {
		t.Fatalf("expected typed sign for KindNone, got %d", got)
	}
}

func TestSignedAmountClampsMinInt64(t *testing.T) {
	if got := SignedAmount(KindIncome, math.MinInt64); got != math.MaxInt64 {
		t.Fatalf("expected income to stay positive, got %d", got)
	}
	if got := SignedAmount(KindExpense, math.MinInt64); got != -math.MaxInt64 {
		t.Fatalf("expected %d, got %d", int64(-math.MaxInt64), got)
	}
}

func TestMonthRejectsImpossibleDates(t *testing.T) {
	if _, err := Month(2024, 13); err == nil {
		t.Fatalf("expected error for month 13")
	}
	if _, err := Month(0, 5); err == nil {
		t.Fatalf("expected error for year 0")
	}
	got, err := Month(2024, 2)
	if err != nil || got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("unexpected result %v, %v", got, err)
	}
}
