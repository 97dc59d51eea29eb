package store

import (
	"time"

	"github.com/atomicstack/trackmoney/internal/format"
	"github.com/atomicstack/trackmoney/internal/ledger"
)

// Seed returns the sample records written to a fresh store, dated relative
// to the month containing now.
func Seed(now time.Time) []ledger.Record {
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	back := func(months int) time.Time { return base.AddDate(0, -months, 0) }
	salary := func(months int) ledger.Record {
		d := back(months)
		return ledger.Record{Date: d, Title: "Salary " + format.ShortMonth(d), Amount: 25000}
	}
	return []ledger.Record{
		salary(0),
		salary(1),
		salary(2),
		salary(3),
		{Date: back(1), Title: "Rent", Amount: -8000},
		{Date: back(2), Title: "Loan", Amount: 15000},
		{Date: back(2), Title: "Shopping", Amount: -2345},
		{Date: back(2), Title: "New clothes", Amount: -3200},
		{Date: back(2), Title: "Bicycle", Amount: -1500},
	}
}
