package table

import "testing"

func TestNewColumnWidensToName(t *testing.T) {
	col := NewColumn("Amount", 2, AlignRight)
	if col.Width != 6 {
		t.Fatalf("expected width 6, got %d", col.Width)
	}
}

func TestRowPadsFixedWidthColumns(t *testing.T) {
	cols := []Column{
		NewColumn("Type", 6, AlignLeft),
		NewColumn("Title", 8, AlignLeft),
		NewColumn("Amount", 7, AlignRight),
	}
	got := Row(cols, []string{"Income", "Salary", "25,000"}, 1)
	want := "Income Salary    25,000"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if header := Header(cols, 1); header != "Type   Title     Amount" {
		t.Fatalf("unexpected header %q", header)
	}
	if w := Width(cols, 1); w != 23 {
		t.Fatalf("expected width 23, got %d", w)
	}
}

func TestRowLeavesLastLeftColumnUnpadded(t *testing.T) {
	cols := []Column{NewColumn("A", 3, AlignLeft), NewColumn("B", 5, AlignLeft)}
	if got := Row(cols, []string{"x", "y"}, 1); got != "x   y" {
		t.Fatalf("expected %q, got %q", "x   y", got)
	}
}

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Salary", "January 2024", "25,000"},
		{"Rent", "May 2024", "-8,000"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"Salary  January 2024  25,000",
		"Rent    May 2024      -8,000",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
