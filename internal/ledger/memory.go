package ledger

import "context"

// MemoryStore keeps records in memory. It backs tests and dry runs.
type MemoryStore struct {
	Saved [][]Record
	Err   error
	init  []Record
}

// NewMemoryStore returns a store preloaded with records.
func NewMemoryStore(records ...Record) *MemoryStore {
	return &MemoryStore{init: append([]Record(nil), records...)}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Load(context.Context) ([]Record, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if n := len(s.Saved); n > 0 {
		return append([]Record(nil), s.Saved[n-1]...), nil
	}
	return append([]Record(nil), s.init...), nil
}

func (s *MemoryStore) Save(_ context.Context, records []Record) error {
	if s.Err != nil {
		return s.Err
	}
	s.Saved = append(s.Saved, append([]Record(nil), records...))
	return nil
}

// Last returns the most recently saved collection.
func (s *MemoryStore) Last() []Record {
	if len(s.Saved) == 0 {
		return nil
	}
	return s.Saved[len(s.Saved)-1]
}
