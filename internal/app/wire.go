package app

import (
	"os"

	"passkeeper/internal/crypto"
	"passkeeper/internal/domain"
	"passkeeper/internal/logger"
	"passkeeper/internal/services/passwords"
	"passkeeper/internal/store"
)

// Wire bundles the providers, store and service for the CLI.
type Wire struct {
	Config    Config
	Log       logger.Logger
	Files     domain.FileProvider
	Crypto    domain.CryptoProvider
	Store     *store.Keeper
	Passwords domain.PasswordService
}

// WireOption overrides one collaborator, mostly for tests.
type WireOption func(*Wire)

// WithLogger sets the logger shared by the store and the service.
func WithLogger(l logger.Logger) WireOption {
	return func(w *Wire) { w.Log = l }
}

// WithFiles replaces the on-disk file provider.
func WithFiles(f domain.FileProvider) WireOption {
	return func(w *Wire) { w.Files = f }
}

// WithCrypto replaces the crypto provider built from Config.KDF and Config.Cipher.
func WithCrypto(c domain.CryptoProvider) WireOption {
	return func(w *Wire) { w.Crypto = c }
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, opts ...WireOption) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Wire{Config: cfg}
	for _, opt := range opts {
		opt(w)
	}

	if w.Log == nil {
		level := logger.LevelWarn
		if cfg.Verbose {
			level = logger.LevelDebug
		}
		w.Log = logger.New(os.Stderr, level)
	}
	if w.Files == nil {
		w.Files = store.NewFileStore()
	}
	if w.Crypto == nil {
		p, err := crypto.NewProviderByName(cfg.KDF, cfg.Cipher)
		if err != nil {
			return nil, err
		}
		w.Log.Debug("crypto provider", "name", p.Name())
		w.Crypto = p
	}

	w.Store = store.NewKeeper(cfg.Path(), w.Crypto, w.Files, store.WithLogger(w.Log))
	w.Passwords = passwords.New(w.Store, passwords.WithLogger(w.Log))
	return w, nil
}
