// Package format renders dates and amounts for display. The functions are
// pure and hold no state beyond the shared number printer.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// MonthYear formats t as "January 2024".
func MonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// ShortMonth formats t as "Jan".
func ShortMonth(t time.Time) string {
	return t.Format("Jan")
}

// Amount renders n minor units with the given number of decimal places and a
// thousands separator. With decimals == 0 the value is printed as-is.
func Amount(n int64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	d := decimal.New(n, -int32(decimals))
	abs := d.Abs()
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(printer.Sprintf("%d", abs.Truncate(0).IntPart()))
	if decimals > 0 {
		fixed := abs.StringFixed(int32(decimals))
		if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
			b.WriteString(fixed[idx:])
		}
	}
	return b.String()
}
