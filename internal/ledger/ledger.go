package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/trackmoney/internal/logging/events"
)

// Store persists the whole record collection.
type Store interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
	Name() string
}

// Ledger is the single owner of the record collection. Every mutation is
// followed by a full save through the store.
type Ledger struct {
	store   Store
	records []Record
}

// Open loads the records from store.
func Open(ctx context.Context, store Store) (*Ledger, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger from %s: %w", store.Name(), err)
	}
	return &Ledger{store: store, records: records}, nil
}

// Records returns a copy of the records in ledger order.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// At returns the record at index i.
func (l *Ledger) At(i int) (Record, error) {
	if i < 0 || i >= len(l.records) {
		return Record{}, ErrIndexOutOfRange
	}
	return l.records[i], nil
}

// Balance sums every record.
func (l *Ledger) Balance() int64 {
	return Balance(l.records)
}

// Add appends r and saves.
func (l *Ledger) Add(ctx context.Context, r Record) error {
	r.Title = strings.TrimSpace(r.Title)
	if err := r.Validate(); err != nil {
		return err
	}
	l.records = append(l.records, r)
	events.Ledger.Add(r.Title, r.Amount)
	return l.Save(ctx)
}

// SetTitle replaces the title of record i and saves.
func (l *Ledger) SetTitle(ctx context.Context, i int, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	return l.edit(ctx, i, "title", func(r *Record) { r.Title = title })
}

// SetAmount replaces the amount of record i and saves.
func (l *Ledger) SetAmount(ctx context.Context, i int, amount int64) error {
	return l.edit(ctx, i, "amount", func(r *Record) { r.Amount = amount })
}

// SetDate replaces the month of record i and saves.
func (l *Ledger) SetDate(ctx context.Context, i int, date time.Time) error {
	if date.IsZero() {
		return ErrInvalidDate
	}
	return l.edit(ctx, i, "date", func(r *Record) { r.Date = date })
}

// Delete removes record i and saves.
func (l *Ledger) Delete(ctx context.Context, i int) error {
	if i < 0 || i >= len(l.records) {
		return ErrIndexOutOfRange
	}
	events.Ledger.Delete(i, l.records[i].Title)
	l.records = append(l.records[:i], l.records[i+1:]...)
	return l.Save(ctx)
}

// Save writes the full collection to the store.
func (l *Ledger) Save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.Records()); err != nil {
		return fmt.Errorf("save ledger to %s: %w", l.store.Name(), err)
	}
	events.Ledger.Save(l.store.Name(), len(l.records))
	return nil
}

func (l *Ledger) edit(ctx context.Context, i int, field string, apply func(*Record)) error {
	if i < 0 || i >= len(l.records) {
		return ErrIndexOutOfRange
	}
	apply(&l.records[i])
	events.Ledger.Edit(i, field)
	return l.Save(ctx)
}
