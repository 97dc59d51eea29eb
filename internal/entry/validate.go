package entry

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/trackmoney/internal/ledger"
)

var (
	ErrEmpty       = errors.New("please enter a value")
	ErrNotInteger  = errors.New("please enter a whole number")
	ErrMonthRange  = errors.New("month must be between 1 and 12")
	ErrInvalidYear = errors.New("year must be between 1 and 9999")
)

var amountCleaner = strings.NewReplacer(",", "", "_", "", " ", "")

// IsQuit reports whether input is one of the sentinels that abort an entry
// sequence: exit, q or quit in any case.
func IsQuit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "q", "quit":
		return true
	}
	return false
}

// ParseTitle requires some non-blank text.
func ParseTitle(input string) (string, error) {
	title := strings.TrimSpace(input)
	if title == "" {
		return "", ErrEmpty
	}
	return title, nil
}

// ParseAmount reads a signed whole number. Thousands separators (comma,
// underscore) and spaces are ignored.
func ParseAmount(input string) (int64, error) {
	raw := amountCleaner.Replace(strings.TrimSpace(input))
	if raw == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n == math.MinInt64 {
		return 0, ErrNotInteger
	}
	return n, nil
}

// ParseMonth reads a month number in [1,12].
func ParseMonth(input string) (int, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotInteger
	}
	if n < 1 || n > 12 {
		return 0, ErrMonthRange
	}
	return n, nil
}

// ParseYear reads a year that forms a real calendar month with month.
func ParseYear(input string, month int) (int, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotInteger
	}
	if _, err := ledger.Month(n, month); err != nil {
		return 0, ErrInvalidYear
	}
	return n, nil
}
