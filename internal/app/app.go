package app

import (
	"github.com/pkg/errors"

	"passkeeper/internal/domain"
)

var (
	// ErrWrongPassphrase is returned when the file decrypts to something that
	// is not a store.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted store")
	// ErrLoadFailed covers a failed read or decryption.
	ErrLoadFailed = errors.New("cannot open store: wrong passphrase or unreadable file")
	// ErrStoreFailed covers a failed encryption or write.
	ErrStoreFailed = errors.New("cannot save store")
)

// App runs the unlock, change, commit sequence over a PasswordService.
type App struct {
	Passwords domain.PasswordService
}

// New returns an App over the given service.
func New(passwords domain.PasswordService) *App {
	return &App{Passwords: passwords}
}

// Open unlocks the store with passphrase and loads it.
func (a *App) Open(passphrase string) error {
	a.Passwords.SetPassword(passphrase)
	switch a.Passwords.LoadPasswords() {
	case domain.OutcomeLoadSucceeded:
		return nil
	case domain.OutcomeLoadCorrupted:
		return ErrWrongPassphrase
	default:
		return ErrLoadFailed
	}
}

// Commit writes pending changes.
func (a *App) Commit() error {
	if a.Passwords.StorePasswords() != domain.OutcomeStoreSucceeded {
		return ErrStoreFailed
	}
	return nil
}

// Close scrubs the passphrase and records from memory.
func (a *App) Close() { a.Passwords.Destroy() }
