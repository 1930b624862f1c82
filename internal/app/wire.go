package app

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"shopadmin/internal/backend"
	"shopadmin/internal/domain"
	"shopadmin/internal/panel"
	"shopadmin/internal/store"
)

// Wire bundles the store, backend client, logger and panel for the CLI.
type Wire struct {
	Config  Config
	Log     zerolog.Logger
	Store   domain.KeyValueStore
	Backend domain.Backend
	Panel   *panel.Panel
	HTTP    *http.Client
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	log, err := NewLogger(logOut, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	var kv domain.KeyValueStore
	if cfg.Passphrase != "" {
		kv = store.NewSealedKVFileStore(cfg.Home, cfg.Passphrase)
	} else {
		kv = store.NewKVFileStore(cfg.Home)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	bc := backend.NewHTTP(cfg.Backend, httpClient, log.With().Str("component", "backend").Logger())

	p := panel.New(bc, kv, panel.Options{
		MessageTTL: cfg.MessageTTL,
		Log:        log.With().Str("component", "panel").Logger(),
	})

	return &Wire{
		Config:  cfg,
		Log:     log,
		Store:   kv,
		Backend: bc,
		Panel:   p,
		HTTP:    httpClient,
	}, nil
}

// Close releases panel timers.
func (w *Wire) Close() {
	w.Panel.Close()
}
