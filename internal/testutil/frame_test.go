package testutil

import "testing"

func TestLinesStripsStyling(t *testing.T) {
	got := Lines("\x1b[31mred\x1b[0m\nplain\n")
	if len(got) != 2 || got[0] != "red" || got[1] != "plain" {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestRequireContains(t *testing.T) {
	RequireContains(t, "\x1b[1mBalance: 0\x1b[0m", "Balance", "0")
	RequireNotContains(t, "Balance: 0", "Rent")
}
