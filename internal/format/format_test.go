package format

import (
	"testing"
	"time"
)

func TestMonthYear(t *testing.T) {
	got := MonthYear(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	if got != "January 2024" {
		t.Fatalf("expected January 2024, got %q", got)
	}
	if short := ShortMonth(time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)); short != "Sep" {
		t.Fatalf("expected Sep, got %q", short)
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		n        int64
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{25000, 0, "25,000"},
		{-8000, 0, "-8,000"},
		{1234567, 0, "1,234,567"},
		{123456, 2, "1,234.56"},
		{-5, 2, "-0.05"},
		{100, 2, "1.00"},
		{999, -1, "999"},
	}
	for _, tc := range cases {
		if got := Amount(tc.n, tc.decimals); got != tc.want {
			t.Errorf("Amount(%d, %d) = %q, want %q", tc.n, tc.decimals, got, tc.want)
		}
	}
}
