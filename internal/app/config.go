package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"passkeeper/internal/crypto"
)

const (
	// DefaultFile is the store file name inside Home.
	DefaultFile = "passkeeper.dat"
	// HomeEnv overrides the default home directory.
	HomeEnv = "PASSKEEPER_HOME"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string // store directory, e.g. $HOME/.passkeeper
	File    string // file name inside Home
	KDF     string // crypto.KDFScrypt, crypto.KDFArgon2id or crypto.KDFPBKDF2
	Cipher  string // crypto.CipherAESCBC or crypto.CipherChaCha20Poly1305
	Verbose bool   // debug logging
}

// Defaults returns a Config with every field set.
func Defaults() Config {
	return Config{
		Home:   DefaultHome(),
		File:   DefaultFile,
		KDF:    crypto.KDFScrypt,
		Cipher: crypto.CipherAESCBC,
	}
}

// DefaultHome returns $PASSKEEPER_HOME, else ~/.passkeeper, else ./.passkeeper.
func DefaultHome() string {
	if h := os.Getenv(HomeEnv); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".passkeeper")
	}
	return ".passkeeper"
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Home) == "" {
		return errors.Wrap(ErrInvalidConfig, "home directory is empty")
	}
	if strings.TrimSpace(c.File) == "" {
		return errors.Wrap(ErrInvalidConfig, "file name is empty")
	}
	if c.File != filepath.Base(c.File) {
		return errors.Wrapf(ErrInvalidConfig, "file name %q must not contain a directory", c.File)
	}
	if _, err := crypto.KDFByName(c.KDF); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "kdf %q: one of %s", c.KDF, strings.Join(crypto.KDFNames(), ", "))
	}
	if _, err := crypto.CipherByName(c.Cipher); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "cipher %q: one of %s", c.Cipher, strings.Join(crypto.CipherNames(), ", "))
	}
	return nil
}

// Path is the full path of the store file.
func (c Config) Path() string { return filepath.Join(c.Home, c.File) }
