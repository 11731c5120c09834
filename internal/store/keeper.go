package store

import (
	"sync"

	"passkeeper/internal/domain"
	"passkeeper/internal/logger"
	"passkeeper/internal/util/memzero"
)

const (
	opLoad  = "load"
	opStore = "store"
)

// Keeper is the in-memory record store backed by one encrypted file.
//
// It starts empty and locked. Add, Update and Remove only touch memory and
// mark the keeper dirty; Store is the only call that commits. Records stay
// resident after a successful Store.
type Keeper struct {
	mu sync.Mutex

	path   string
	crypto domain.CryptoProvider
	files  domain.FileProvider
	log    logger.Logger

	records  []domain.Record
	password []byte // nil while locked
	dirty    bool
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithLogger sets the logger; the default discards output.
func WithLogger(l logger.Logger) Option {
	return func(k *Keeper) {
		if l != nil {
			k.log = l
		}
	}
}

// NewKeeper returns an empty, locked Keeper for the file at path.
func NewKeeper(path string, crypto domain.CryptoProvider, files domain.FileProvider, opts ...Option) *Keeper {
	k := &Keeper{
		path:   path,
		crypto: crypto,
		files:  files,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.log = k.log.WithFields(map[string]any{"path": path})
	return k
}

// Path returns the store file path.
func (k *Keeper) Path() string { return k.path }

// SetPassword unlocks the keeper. It performs no I/O and no strength check.
func (k *Keeper) SetPassword(password string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	memzero.Zero(k.password)
	k.password = append(make([]byte, 0, len(password)), password...)
}

// IsUnlocked reports whether a master password is set.
func (k *Keeper) IsUnlocked() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.password != nil
}

// Dirty reports whether memory differs from the last successful Store.
func (k *Keeper) Dirty() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.dirty
}

// Add appends a record. It returns false, changing nothing, if label exists.
func (k *Keeper) Add(label, secret string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.index(label) >= 0 {
		return false
	}
	k.records = append(k.records, domain.Record{Label: label, Secret: secret})
	k.dirty = true
	return true
}

// Update replaces the secret of an existing record.
func (k *Keeper) Update(label, secret string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	i := k.index(label)
	if i < 0 {
		return false
	}
	k.records[i].Secret = secret
	k.dirty = true
	return true
}

// Remove deletes the record with label, keeping the order of the rest.
func (k *Keeper) Remove(label string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	i := k.index(label)
	if i < 0 {
		return false
	}
	k.records = append(k.records[:i], k.records[i+1:]...)
	k.dirty = true
	return true
}

// Find returns the first record with label.
func (k *Keeper) Find(label string) (domain.Record, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	i := k.index(label)
	if i < 0 {
		return domain.Record{}, false
	}
	return k.records[i], true
}

// Records returns a copy of the records in insertion order.
func (k *Keeper) Records() []domain.Record {
	k.mu.Lock()
	defer k.mu.Unlock()
	return domain.CloneRecords(k.records)
}

// Load replaces the records with the decrypted file contents.
//
// A locked keeper returns nil without touching the providers, and an empty
// file leaves the records as they are. On any failure the records are left
// untouched and the returned *domain.Error carries KindIO, KindCrypto or
// KindCorrupted.
func (k *Keeper) Load() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.password == nil {
		return nil
	}

	data, err := k.files.ReadFile(k.path)
	if err != nil {
		return domain.NewError(domain.KindIO, opLoad, err)
	}
	if len(data) == 0 {
		k.log.Debug("store file empty; nothing to load")
		return nil
	}

	key, iv, err := k.params()
	if err != nil {
		return domain.NewError(domain.KindCrypto, opLoad, err)
	}
	defer memzero.Zero(key)

	plain, err := k.crypto.Decrypt(data, key, iv)
	if err != nil {
		return domain.NewError(domain.KindCrypto, opLoad, err)
	}
	defer memzero.Zero(plain)

	records, err := Decode(plain)
	if err != nil {
		return domain.NewError(domain.KindCorrupted, opLoad, err)
	}
	k.records = records
	k.dirty = false
	k.log.Debug("loaded records", "count", len(records))
	return nil
}

// Store encrypts and writes the records if there is anything to persist.
//
// A locked or clean keeper returns (true, nil) without touching the
// providers. The dirty flag is cleared only after a successful write; on
// failure Store returns false and a *domain.Error of KindCrypto or KindIO.
func (k *Keeper) Store() (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.password == nil || !k.dirty {
		return true, nil
	}

	plain := []byte(Encode(k.records))
	defer memzero.Zero(plain)

	key, iv, err := k.params()
	if err != nil {
		return false, domain.NewError(domain.KindCrypto, opStore, err)
	}
	defer memzero.Zero(key)

	ciphertext, err := k.crypto.Encrypt(plain, key, iv)
	if err != nil {
		return false, domain.NewError(domain.KindCrypto, opStore, err)
	}
	if err := k.files.WriteFile(k.path, ciphertext); err != nil {
		return false, domain.NewError(domain.KindIO, opStore, err)
	}
	k.dirty = false
	k.log.Debug("stored records", "count", len(k.records))
	return true, nil
}

// Destroy locks the keeper and drops all records. The password bytes are
// zeroed; secret strings are released to the garbage collector.
func (k *Keeper) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()

	memzero.Zero(k.password)
	k.password = nil
	for i := range k.records {
		k.records[i] = domain.Record{}
	}
	k.records = nil
	k.dirty = false
}

func (k *Keeper) params() (key, iv []byte, err error) {
	key, err = k.crypto.DeriveKey(string(k.password))
	if err != nil {
		return nil, nil, err
	}
	iv, err = k.crypto.DeriveIV()
	if err != nil {
		memzero.Zero(key)
		return nil, nil, err
	}
	return key, iv, nil
}

func (k *Keeper) index(label string) int {
	for i, r := range k.records {
		if r.Label == label {
			return i
		}
	}
	return -1
}

// Compile-time assertion that Keeper implements domain.RecordStore.
var _ domain.RecordStore = (*Keeper)(nil)
