package events

import "github.com/atomicstack/trackmoney/internal/logging"

type EntryTracer struct{}

type entryReason string

const (
	EntryReasonSentinel entryReason = "sentinel"
	EntryReasonEscape   entryReason = "escape"
)

var Entry = EntryTracer{}

func (EntryTracer) Prompt(kind, field string) {
	logging.Trace("entry.prompt", map[string]interface{}{"kind": kind, "field": field})
}

func (EntryTracer) Invalid(kind, field, reason string) {
	logging.Trace("entry.invalid", map[string]interface{}{"kind": kind, "field": field, "reason": reason})
}

func (EntryTracer) Submit(kind string, fields map[string]string) {
	logging.Trace("entry.submit", map[string]interface{}{"kind": kind, "fields": fields})
}

func (EntryTracer) Cancel(kind, field string, reason entryReason) {
	logging.Trace("entry.cancel", map[string]interface{}{"kind": kind, "field": field, "reason": string(reason)})
}
