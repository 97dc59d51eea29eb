// Package store persists the ledger. The JSON file backend is the default;
// the SQLite backend keeps the same whole-collection semantics.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/trackmoney/internal/ledger"
)

// Kind selects a persistence backend.
type Kind string

const (
	KindJSON   Kind = "json"
	KindSQLite Kind = "sqlite"
)

// IsValid reports whether k names a known backend.
func (k Kind) IsValid() bool {
	switch k {
	case KindJSON, KindSQLite:
		return true
	}
	return false
}

// ParseKind normalises a backend name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == "" {
		return KindJSON, nil
	}
	if !k.IsValid() {
		return "", fmt.Errorf("unknown storage backend %q (want json or sqlite)", name)
	}
	return k, nil
}

// Backend is a ledger store that may hold resources.
type Backend interface {
	ledger.Store
	Close() error
}

// Open creates the backend of the given kind at path. now supplies the
// reference month for the seed set written to an empty store.
func Open(kind Kind, path string, now func() time.Time) (Backend, error) {
	if now == nil {
		now = time.Now
	}
	switch kind {
	case KindJSON, "":
		return NewJSONFile(path, now), nil
	case KindSQLite:
		return OpenSQLite(path, now)
	}
	return nil, fmt.Errorf("unsupported storage backend: %s", kind)
}
