package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/store"
	"github.com/atomicstack/trackmoney/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	DataPath  string
	Backend   store.Kind
	Width     int
	Height    int
	Decimals  int
	// ListQuery is the filter and sort the item list opens with.
	ListQuery ledger.Query
}

// Run opens the ledger and executes the Bubble Tea program. A persistence
// failure inside the program is returned once the terminal is restored.
func Run(ctx context.Context, cfg Config) error {
	backend, err := store.Open(cfg.Backend, cfg.DataPath, time.Now)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	defer backend.Close()

	l, err := ledger.Open(ctx, backend)
	if err != nil {
		return err
	}
	opts := ui.Options{Width: cfg.Width, Height: cfg.Height, Decimals: cfg.Decimals, ListQuery: cfg.ListQuery}
	opts.InitialWidth, opts.InitialHeight = terminalSize(os.Stdout)
	model := ui.NewModel(ctx, l, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return err
	}
	return finish(os.Stdout, model)
}

// terminalSize reads the size of f for the first frame. Zero values leave the
// model on its defaults until Bubble Tea reports the window size.
func terminalSize(f *os.File) (int, int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0, 0
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// finish runs after the alt screen is gone: the goodbye panel is written to
// the normal terminal so it stays visible.
func finish(w io.Writer, model *ui.Model) error {
	if err := model.Err(); err != nil {
		return err
	}
	if farewell := model.Farewell(); farewell != "" {
		if _, err := io.WriteString(w, farewell); err != nil {
			return fmt.Errorf("write farewell: %w", err)
		}
	}
	return nil
}
