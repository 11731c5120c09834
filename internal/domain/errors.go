package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a store failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindLocked marks an operation attempted without a master password.
	// Load and store treat it as a successful no-op rather than returning it.
	KindLocked
	// KindCrypto covers key derivation, encryption and decryption failures.
	KindCrypto
	// KindIO covers reading or writing the store file.
	KindIO
	// KindCorrupted means the decrypted plaintext failed magic or shape checks.
	KindCorrupted
)

func (k Kind) String() string {
	switch k {
	case KindLocked:
		return "locked"
	case KindCrypto:
		return "crypto failure"
	case KindIO:
		return "io failure"
	case KindCorrupted:
		return "corrupted"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the record store.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError wraps err with a kind and the failing operation.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause walk through Error.
func (e *Error) Cause() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
