package crypto

import "github.com/pkg/errors"

var (
	// ErrBadKey is returned for keys of the wrong size.
	ErrBadKey = errors.New("crypto: invalid key")
	// ErrBadIV is returned for IVs or nonces of the wrong size.
	ErrBadIV = errors.New("crypto: invalid iv")
	// ErrBadPadding is returned when CBC padding does not verify, which is what
	// a wrong password usually produces.
	ErrBadPadding = errors.New("crypto: bad padding")
	// ErrBadCiphertext is returned for ciphertext of an impossible length.
	ErrBadCiphertext = errors.New("crypto: malformed ciphertext")
	// ErrAuthFailed is returned when an AEAD tag does not verify.
	ErrAuthFailed = errors.New("crypto: message authentication failed")
	// ErrUnsupported is returned for unknown algorithm names.
	ErrUnsupported = errors.New("crypto: unsupported algorithm")
)
