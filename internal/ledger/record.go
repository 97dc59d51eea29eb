// Package ledger owns the income/expense records and the queries the list
// view runs over them. Records are identified by their position only.
package ledger

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrIndexOutOfRange = errors.New("record index out of range")
	ErrInvalidDate     = errors.New("invalid month or year")
)

// Record is a single income (positive amount) or expense (negative amount).
type Record struct {
	Date   time.Time
	Title  string
	Amount int64
}

// Kind classifies a record by the sign of its amount.
type Kind int

const (
	KindNone Kind = iota
	KindIncome
	KindExpense
)

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindExpense:
		return "Expense"
	default:
		return "None"
	}
}

// Kind reports whether the record is an income, an expense, or neither.
func (r Record) Kind() Kind {
	switch {
	case r.Amount > 0:
		return KindIncome
	case r.Amount < 0:
		return KindExpense
	default:
		return KindNone
	}
}

// Validate checks the record invariants.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the first day of the given month in UTC. It fails when the
// pair does not name a real calendar month.
func Month(year, month int) (time.Time, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

// monthIndex collapses a timestamp to month granularity.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// SignedAmount applies the sign implied by kind to a typed value. KindNone
// keeps the value as typed. math.MinInt64 has no positive counterpart and is
// clamped to math.MaxInt64 before the sign is applied.
func SignedAmount(kind Kind, value int64) int64 {
	abs := value
	switch {
	case abs == math.MinInt64:
		abs = math.MaxInt64
	case abs < 0:
		abs = -abs
	}
	switch kind {
	case KindExpense:
		return -abs
	case KindIncome:
		return abs
	}
	return value
}
