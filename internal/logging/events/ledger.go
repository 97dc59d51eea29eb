package events

import "github.com/atomicstack/trackmoney/internal/logging"

type LedgerTracer struct{}

var Ledger = LedgerTracer{}

func (LedgerTracer) Load(source string, records int, seeded bool) {
	logging.Trace("ledger.load", map[string]interface{}{"source": source, "records": records, "seeded": seeded})
}

func (LedgerTracer) Save(source string, records int) {
	logging.Trace("ledger.save", map[string]interface{}{"source": source, "records": records})
}

func (LedgerTracer) Add(title string, amount int64) {
	logging.Trace("ledger.add", map[string]interface{}{"title": title, "amount": amount})
}

func (LedgerTracer) Edit(index int, field string) {
	logging.Trace("ledger.edit", map[string]interface{}{"index": index, "field": field})
}

func (LedgerTracer) Delete(index int, title string) {
	logging.Trace("ledger.delete", map[string]interface{}{"index": index, "title": title})
}
