package crypto

import (
	"crypto/sha256"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// appSalt is mixed into every key derivation. The file format has no header
// to carry a per-file salt.
var appSalt = []byte("passkeeper:kdf:v1")

// KDF derives a symmetric key from the master password.
type KDF interface {
	Name() string
	Key(password []byte, keyLen int) ([]byte, error)
}

// Names of the supported key derivation functions.
const (
	KDFScrypt   = "scrypt"
	KDFArgon2id = "argon2id"
	KDFPBKDF2   = "pbkdf2"
)

// Scrypt derives keys with scrypt.
type Scrypt struct {
	N, R, P int
}

// NewScrypt returns scrypt with N=2^15, r=8, p=1.
func NewScrypt() *Scrypt { return &Scrypt{N: 1 << 15, R: 8, P: 1} }

func (s *Scrypt) Name() string { return KDFScrypt }

func (s *Scrypt) Key(password []byte, keyLen int) ([]byte, error) {
	key, err := scrypt.Key(password, appSalt, s.N, s.R, s.P, keyLen)
	if err != nil {
		return nil, errors.Wrapf(ErrBadKey, "scrypt: %v", err)
	}
	return key, nil
}

// Argon2id derives keys with Argon2id.
type Argon2id struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8
}

// NewArgon2id returns Argon2id with t=3, m=64MiB, p=4.
func NewArgon2id() *Argon2id {
	return &Argon2id{Time: 3, Memory: 64 * 1024, Threads: 4}
}

func (a *Argon2id) Name() string { return KDFArgon2id }

func (a *Argon2id) Key(password []byte, keyLen int) ([]byte, error) {
	if keyLen <= 0 || a.Time == 0 || a.Threads == 0 {
		return nil, errors.Wrapf(ErrBadKey, "argon2id: invalid parameters t=%d p=%d len=%d", a.Time, a.Threads, keyLen)
	}
	return argon2.IDKey(password, appSalt, a.Time, a.Memory, a.Threads, uint32(keyLen)), nil
}

// PBKDF2 derives keys with PBKDF2-HMAC-SHA256.
type PBKDF2 struct {
	Iterations int
}

// NewPBKDF2 returns PBKDF2 with 20000 iterations.
func NewPBKDF2() *PBKDF2 { return &PBKDF2{Iterations: 20000} }

func (p *PBKDF2) Name() string { return KDFPBKDF2 }

func (p *PBKDF2) Key(password []byte, keyLen int) ([]byte, error) {
	if keyLen <= 0 || p.Iterations <= 0 {
		return nil, errors.Wrapf(ErrBadKey, "pbkdf2: invalid parameters iter=%d len=%d", p.Iterations, keyLen)
	}
	return pbkdf2.Key(password, appSalt, p.Iterations, keyLen, sha256.New), nil
}

var kdfs = map[string]func() KDF{
	KDFScrypt:   func() KDF { return NewScrypt() },
	KDFArgon2id: func() KDF { return NewArgon2id() },
	KDFPBKDF2:   func() KDF { return NewPBKDF2() },
}

// KDFByName returns the KDF registered under name with its default parameters.
func KDFByName(name string) (KDF, error) {
	mk, ok := kdfs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupported, "kdf %q", name)
	}
	return mk(), nil
}

// KDFNames lists the supported KDF names, sorted.
func KDFNames() []string {
	out := make([]string, 0, len(kdfs))
	for n := range kdfs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
