package interfaces

import domaintypes "passkeeper/internal/domain/types"

// FileProvider moves the raw ciphertext of the store file to and from disk.
type FileProvider interface {
	// ReadFile returns the file contents; an absent file reads as empty.
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// RecordStore owns the ordered records, the master password and the dirty flag.
type RecordStore interface {
	SetPassword(password string)
	IsUnlocked() bool

	Add(label, secret string) bool
	Update(label, secret string) bool
	Remove(label string) bool
	Find(label string) (domaintypes.Record, bool)
	Records() []domaintypes.Record
	Dirty() bool

	Load() error
	Store() (bool, error)
	Destroy()
}
