// Package toml loads parley configuration files.
package toml

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/parley"
)

// fileConfig is the on-disk shape. Zero values leave the base untouched.
type fileConfig struct {
	Model          string   `toml:"model"`
	Locale         string   `toml:"locale"`
	Store          string   `toml:"store"`
	DataDir        string   `toml:"data_dir"`
	ExportDir      string   `toml:"export_dir"`
	SpeechCommand  []string `toml:"speech_command"`
	RequestTimeout string   `toml:"request_timeout"`
}

// Load reads the TOML file at path and overlays its values on base. A
// missing file is reported with an error matching os.ErrNotExist.
func Load(path string, base parley.Config) (parley.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("toml: %w", err)
	}
	return Decode(string(data), base)
}

// Decode parses TOML text and overlays its values on base. Unknown keys and
// invalid values fail with parley.ErrValidation.
func Decode(data string, base parley.Config) (parley.Config, error) {
	var fc fileConfig
	md, err := toml.Decode(data, &fc)
	if err != nil {
		return base, fmt.Errorf("toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("toml: unknown keys %s: %w", strings.Join(keys, ", "), parley.ErrValidation)
	}

	cfg := base
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.Locale != "" {
		cfg.Locale = fc.Locale
	}
	if fc.Store != "" {
		if fc.Store != parley.StoreSQLite && fc.Store != parley.StoreJSON {
			return base, fmt.Errorf("toml: store %q: %w", fc.Store, parley.ErrValidation)
		}
		cfg.Store = fc.Store
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.ExportDir != "" {
		cfg.ExportDir = fc.ExportDir
	}
	if len(fc.SpeechCommand) > 0 {
		cfg.SpeechCommand = fc.SpeechCommand
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return base, fmt.Errorf("toml: request_timeout: %v: %w", err, parley.ErrValidation)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}
