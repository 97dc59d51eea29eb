package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/store"
)

func noEnvFile(t *testing.T) []string {
	t.Helper()
	return []string{envEnvFile + "=" + filepath.Join(t.TempDir(), "missing.env")}
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, noEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Backend != store.KindJSON || cfg.App.DataPath != "trackmoney.json" {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if cfg.App.Decimals != 0 || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %+v %+v", cfg.App, cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := append(noEnvFile(t),
		envBackend+"=sqlite",
		envWidth+"=120",
		envDecimals+"=2",
		envTrace+"=true",
	)
	cfg, err := LoadArgs([]string{"-width", "90", "-data", "ledger.db"}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Backend != store.KindSQLite {
		t.Fatalf("expected sqlite backend from env, got %q", cfg.App.Backend)
	}
	if cfg.App.Width != 90 || cfg.App.Decimals != 2 || cfg.App.DataPath != "ledger.db" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.Flags["width"] != "90" || cfg.Flags["backend"] != "sqlite" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
}

func TestLoadArgsListQuery(t *testing.T) {
	environ := append(noEnvFile(t), envFilter+"=expenses", envOrder+"=desc")
	cfg, err := LoadArgs([]string{"-sort", "amount"}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := ledger.Query{Filter: ledger.FilterExpenses, Sort: ledger.SortAmount, Direction: ledger.Descending}
	if cfg.App.ListQuery != want {
		t.Fatalf("expected %+v, got %+v", want, cfg.App.ListQuery)
	}
	if cfg.Flags["sort"] != "amount" || cfg.Flags["filter"] != "expenses" || cfg.Flags["order"] != "desc" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
}

func TestLoadArgsRejectsUnknownListQuery(t *testing.T) {
	for _, args := range [][]string{
		{"-sort", "colour"},
		{"-filter", "debts"},
		{"-order", "sideways"},
	} {
		if _, err := LoadArgs(args, noEnvFile(t)); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestSQLiteDefaultPath(t *testing.T) {
	cfg, err := LoadArgs([]string{"-backend", "sqlite"}, noEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DataPath != "trackmoney.db" {
		t.Fatalf("expected sqlite default path, got %q", cfg.App.DataPath)
	}
}

func TestLoadArgsRejectsUnknownBackend(t *testing.T) {
	if _, err := LoadArgs([]string{"-backend", "csv"}, noEnvFile(t)); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestEnvFileFillsMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "TRACKMONEY_DATA=from-file.json\nTRACKMONEY_DECIMALS=2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{envEnvFile + "=" + path, envDecimals + "=1"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DataPath != "from-file.json" {
		t.Fatalf("expected data path from env file, got %q", cfg.App.DataPath)
	}
	if cfg.App.Decimals != 1 {
		t.Fatalf("expected environment to win over env file, got %d", cfg.App.Decimals)
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, noEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cases := []func(*Config){
		func(c *Config) { c.App.Width = -1 },
		func(c *Config) { c.App.Height = -1 },
		func(c *Config) { c.App.Decimals = 9 },
		func(c *Config) { c.App.Backend = "csv" },
		func(c *Config) { c.App.DataPath = " " },
	}
	for i, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
