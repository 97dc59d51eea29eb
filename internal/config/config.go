package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/trackmoney/internal/app"
	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/store"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataPath = "TRACKMONEY_DATA"
	envBackend  = "TRACKMONEY_BACKEND"
	envWidth    = "TRACKMONEY_WIDTH"
	envHeight   = "TRACKMONEY_HEIGHT"
	envDecimals = "TRACKMONEY_DECIMALS"
	envFilter   = "TRACKMONEY_FILTER"
	envSort     = "TRACKMONEY_SORT"
	envOrder    = "TRACKMONEY_ORDER"
	envTrace    = "TRACKMONEY_TRACE"
	envLogFile  = "TRACKMONEY_LOG_FILE"
	envEnvFile  = "TRACKMONEY_ENV_FILE"

	defaultEnvFile = ".env"
	maxDecimals    = 8
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values from a
// .env file fill in variables the environment does not set.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	if err := mergeEnvFile(env, envOrDefault(env, envEnvFile, defaultEnvFile)); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("trackmoney", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataPath := fs.String("data", envOrDefault(env, envDataPath, ""), "path to the data file (default trackmoney.json, or trackmoney.db for sqlite)")
	backendName := fs.String("backend", envOrDefault(env, envBackend, string(store.KindJSON)), "storage backend: json or sqlite")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	decimals := fs.Int("decimals", envOrInt(env, envDecimals, 0), "decimal places used when showing amounts")
	filterName := fs.String("filter", envOrDefault(env, envFilter, ""), "type filter the item list opens with: all, incomes or expenses")
	sortName := fs.String("sort", envOrDefault(env, envSort, ""), "column the item list opens sorted by: date, amount or title")
	orderName := fs.String("order", envOrDefault(env, envOrder, ""), "sort direction: asc or desc")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	backend, err := store.ParseKind(*backendName)
	if err != nil {
		return Config{}, err
	}
	query, err := parseListQuery(*filterName, *sortName, *orderName)
	if err != nil {
		return Config{}, err
	}
	path := strings.TrimSpace(*dataPath)
	if path == "" {
		path = defaultDataPath(backend)
	}

	cfg := Config{
		App: app.Config{
			DataPath:  path,
			Backend:   backend,
			Width:     *width,
			Height:    *height,
			Decimals:  *decimals,
			ListQuery: query,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"data":     path,
			"backend":  string(backend),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"decimals": strconv.Itoa(*decimals),
			"filter":   query.Filter.String(),
			"sort":     query.Sort.String(),
			"order":    query.Direction.String(),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseListQuery(filterName, sortName, orderName string) (ledger.Query, error) {
	filter, err := ledger.ParseFilter(filterName)
	if err != nil {
		return ledger.Query{}, err
	}
	key, err := ledger.ParseSortKey(sortName)
	if err != nil {
		return ledger.Query{}, err
	}
	dir, err := ledger.ParseDirection(orderName)
	if err != nil {
		return ledger.Query{}, err
	}
	return ledger.Query{Filter: filter, Sort: key, Direction: dir}, nil
}

func defaultDataPath(kind store.Kind) string {
	if kind == store.KindSQLite {
		return "trackmoney.db"
	}
	return "trackmoney.json"
}

// mergeEnvFile copies values from the dotenv file at path into env without
// overriding existing keys. A missing file is not an error.
func mergeEnvFile(env map[string]string, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks dimensions, decimals and the backend.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Decimals < 0 || cfg.App.Decimals > maxDecimals {
		return fmt.Errorf("decimals must be between 0 and %d (got %d)", maxDecimals, cfg.App.Decimals)
	}
	if !cfg.App.Backend.IsValid() {
		return fmt.Errorf("unknown storage backend %q", cfg.App.Backend)
	}
	if strings.TrimSpace(cfg.App.DataPath) == "" {
		return errors.New("data path must not be empty")
	}
	return nil
}
