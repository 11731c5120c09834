package crypto

import (
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

var (
	ivSecret = []byte("passkeeper:iv:v1")
	ivInfo   = []byte("store file iv")
)

// deriveIV expands the fixed IV label into size bytes. The result is the same
// for every password.
func deriveIV(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrBadIV, "size %d", size)
	}
	iv := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ivSecret, nil, ivInfo), iv); err != nil {
		return nil, errors.Wrap(err, "cannot expand iv")
	}
	return iv, nil
}
