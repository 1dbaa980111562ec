package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/parley"
	pjson "github.com/fwojciec/parley/json"
	"github.com/fwojciec/parley/sqlite"
	"github.com/fwojciec/parley/toml"
)

// options holds the command-line flags. Zero values mean "not set".
type options struct {
	configPath string
	model      string
	apiKey     string
	locale     string
	store      string
	dataDir    string
	exportDir  string
	speechCmd  string
	timeout    time.Duration
}

func defaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "parley", "config.toml")
}

// loadConfig layers defaults, the config file and flags. A missing file is
// tolerated only at the default location.
func loadConfig(opts options, home string) (parley.Config, error) {
	base := parley.DefaultConfig()
	base.DataDir = filepath.Join(home, ".parley")
	base.ExportDir = filepath.Join(home, "Downloads")

	path := opts.configPath
	if path == "" {
		path = defaultConfigPath(home)
	}
	cfg, err := toml.Load(path, base)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && opts.configPath == "":
		cfg = base
	default:
		return parley.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if opts.model != "" {
		cfg.Model = opts.model
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	if opts.store != "" {
		cfg.Store = opts.store
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}
	if opts.exportDir != "" {
		cfg.ExportDir = opts.exportDir
	}
	if opts.speechCmd != "" {
		cfg.SpeechCommand = strings.Fields(opts.speechCmd)
	}
	if opts.timeout != 0 {
		cfg.RequestTimeout = opts.timeout
	}

	if cfg.Store != parley.StoreSQLite && cfg.Store != parley.StoreJSON {
		return parley.Config{}, fmt.Errorf("unknown store %q: must be %q or %q: %w",
			cfg.Store, parley.StoreSQLite, parley.StoreJSON, parley.ErrValidation)
	}
	if cfg.RequestTimeout < 0 {
		return parley.Config{}, fmt.Errorf("negative timeout %s: %w", cfg.RequestTimeout, parley.ErrValidation)
	}
	return cfg, nil
}

// resolveAPIKey returns the explicit flag value, falling back to the env var.
// A key saved through the settings prompt takes precedence over both.
func resolveAPIKey(flagKey, envKey string) string {
	if k := strings.TrimSpace(flagKey); k != "" {
		return k
	}
	return strings.TrimSpace(envKey)
}

// openStore opens the configured KeyValueStore and returns its closer.
func openStore(cfg parley.Config) (parley.KeyValueStore, func() error, error) {
	switch cfg.Store {
	case parley.StoreJSON:
		s, err := pjson.OpenFileStore(filepath.Join(cfg.DataDir, "parley.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return s, func() error { return nil }, nil
	default:
		s, err := sqlite.Open(filepath.Join(cfg.DataDir, "parley.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return s, s.Close, nil
	}
}
