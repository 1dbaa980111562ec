// Command parley is a terminal chat client for the Gemini API.
//
// Usage:
//
//	GEMINI_API_KEY=... parley [flags]
//
// Flags:
//
//	-config string      Path to config file (default: ~/.config/parley/config.toml)
//	-model string       Gemini model ID
//	-api-key string     API key (overrides GEMINI_API_KEY; a stored key wins over both)
//	-locale string      UI and speech locale, e.g. ja-JP or en-US
//	-store string       Storage backend: sqlite, json
//	-data-dir string    Directory for the store and log file (default: ~/.parley)
//	-export-dir string  Directory for Markdown exports (default: ~/Downloads)
//	-speech-cmd string  Speech-to-text command; {locale} is replaced by the locale
//	-timeout duration   Bound on a single request (default: 60s)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fwojciec/parley"
	bt "github.com/fwojciec/parley/bubbletea"
	"github.com/fwojciec/parley/fs"
	"github.com/fwojciec/parley/gemini"
	pjson "github.com/fwojciec/parley/json"
	"github.com/fwojciec/parley/speech"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "parley: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.StringVar(&opts.model, "model", "", "Gemini model ID")
	flag.StringVar(&opts.apiKey, "api-key", "", "API key (overrides GEMINI_API_KEY)")
	flag.StringVar(&opts.locale, "locale", "", "UI and speech locale, e.g. ja-JP or en-US")
	flag.StringVar(&opts.store, "store", "", "Storage backend: sqlite, json")
	flag.StringVar(&opts.dataDir, "data-dir", "", "Directory for the store and log file")
	flag.StringVar(&opts.exportDir, "export-dir", "", "Directory for Markdown exports")
	flag.StringVar(&opts.speechCmd, "speech-cmd", "", "Speech-to-text command; {locale} is replaced by the locale")
	flag.DurationVar(&opts.timeout, "timeout", 0, "Bound on a single request")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env is read here and passed as values.
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg, err := loadConfig(opts, home)
	if err != nil {
		return err
	}
	apiKey := resolveAPIKey(opts.apiKey, os.Getenv("GEMINI_API_KEY"))

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "parley.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, nil))
	logger.Info("starting", "store", cfg.Store, "locale", cfg.Locale, "model", cfg.Model)

	kv, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close store", "error", err)
		}
	}()

	labels := parley.LabelsFor(cfg.Locale)
	session := parley.NewSession(kv,
		parley.WithAPIKey(apiKey),
		parley.WithSessionLogger(logger))
	store := pjson.NewConversationStore(kv, pjson.WithLogger(logger))

	clientOpts := []gemini.Option{gemini.WithLabels(labels)}
	if cfg.Model != "" {
		clientOpts = append(clientOpts, gemini.WithModel(cfg.Model))
	}
	client := gemini.New(clientOpts...)

	renderer := bt.NewChannelRenderer(64)
	defer renderer.Close()

	chat := parley.NewChat(session, store, client,
		parley.WithRenderer(renderer),
		parley.WithLabels(labels),
		parley.WithTimeout(cfg.RequestTimeout),
		parley.WithLogger(logger))

	var recognizer parley.SpeechRecognizer
	if len(cfg.SpeechCommand) > 0 {
		recognizer = speech.NewCommandRecognizer(cfg.SpeechCommand)
	}
	voice := parley.NewVoice(recognizer, cfg.Locale,
		parley.WithVoiceRenderer(renderer),
		parley.WithVoiceLabels(labels),
		parley.WithVoiceLogger(logger))

	exportDir := cfg.ExportDir
	model := bt.New(bt.Deps{
		Chat:     chat,
		Voice:    voice,
		Session:  session,
		Store:    store,
		Exporter: parley.NewExporter(labels),
		Save: func(f parley.ExportFile) (string, error) {
			return fs.SaveExport(exportDir, f)
		},
		Events: renderer.Events(),
		Labels: labels,
		Logger: logger,
	})

	if err := bt.Run(ctx, model); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	logger.Info("exiting", "messages", len(store.Messages()))
	return nil
}
