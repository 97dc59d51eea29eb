package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/store"
	"github.com/atomicstack/trackmoney/internal/testutil"
	"github.com/atomicstack/trackmoney/internal/ui"
)

func TestRunRejectsUnknownBackend(t *testing.T) {
	err := Run(context.Background(), Config{Backend: store.Kind("csv"), DataPath: filepath.Join(t.TempDir(), "x")})
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func newHarness(t *testing.T, mem *ledger.MemoryStore) *ui.Harness {
	t.Helper()
	l, err := ledger.Open(context.Background(), mem)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	return ui.NewHarness(ui.NewModel(context.Background(), l, ui.Options{Width: 80}))
}

func TestFinishPrintsFarewellAfterSaveAndQuit(t *testing.T) {
	h := newHarness(t, ledger.NewMemoryStore())
	h.Type("4")
	if !h.Quit() {
		t.Fatalf("expected program to quit")
	}
	var out strings.Builder
	if err := finish(&out, h.Model()); err != nil {
		t.Fatalf("finish: %v", err)
	}
	testutil.RequireContains(t, out.String(), "Thank you for using TrackMoney!")
}

func TestFinishWritesNothingBeforeQuit(t *testing.T) {
	h := newHarness(t, ledger.NewMemoryStore())
	var out strings.Builder
	if err := finish(&out, h.Model()); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestFinishReturnsPersistenceError(t *testing.T) {
	mem := ledger.NewMemoryStore()
	h := newHarness(t, mem)
	mem.Err = errors.New("disk full")
	h.Type("4")
	var out strings.Builder
	err := finish(&out, h.Model())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no farewell after a failure, got %q", out.String())
	}
}

func TestTerminalSizeIgnoresNonTerminals(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if w, h := terminalSize(f); w != 0 || h != 0 {
		t.Fatalf("expected no size for a regular file, got %dx%d", w, h)
	}
	if w, h := terminalSize(nil); w != 0 || h != 0 {
		t.Fatalf("expected no size for nil, got %dx%d", w, h)
	}
}
