package store

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"passkeeper/internal/domain"
)

const (
	// Magic is the first token of every valid plaintext.
	Magic = "PassKeeper"
	// Separator joins the magic token, labels and secrets.
	Separator = "\r\n"
)

var (
	// ErrCorrupted is returned by Decode for plaintext of the wrong shape.
	ErrCorrupted = errors.New("password data corrupted")
	// ErrInvalidField is returned by ValidateField.
	ErrInvalidField = errors.New("invalid label or secret")
)

// Encode renders records in order as a single text blob.
func Encode(records []domain.Record) string {
	var b strings.Builder
	b.WriteString(Magic)
	for _, r := range records {
		b.WriteString(Separator)
		b.WriteString(r.Label)
		b.WriteString(Separator)
		b.WriteString(r.Secret)
	}
	return b.String()
}

// Decode parses a blob produced by Encode. Surrounding whitespace is ignored.
// It fails with ErrCorrupted when the token count is even or the first token
// is not Magic.
func Decode(data []byte) ([]domain.Record, error) {
	tokens := strings.Split(strings.TrimSpace(string(data)), Separator)
	if len(tokens)%2 != 1 {
		return nil, errors.Wrapf(ErrCorrupted, "got %d tokens, want an odd count", len(tokens))
	}
	if tokens[0] != Magic {
		return nil, errors.Wrap(ErrCorrupted, "unexpected magic")
	}

	records := make([]domain.Record, 0, len(tokens)/2)
	for i := 1; i < len(tokens); i += 2 {
		records = append(records, domain.Record{Label: tokens[i], Secret: tokens[i+1]})
	}
	return records, nil
}

// ValidateField reports whether s survives an Encode/Decode round trip in any
// position: it must be non-empty, contain no CR or LF, and carry no leading
// or trailing whitespace (Decode trims the blob).
func ValidateField(name, s string) error {
	switch {
	case s == "":
		return errors.Wrapf(ErrInvalidField, "%s is empty", name)
	case strings.ContainsAny(s, "\r\n"):
		return errors.Wrapf(ErrInvalidField, "%s contains a line break", name)
	case strings.TrimFunc(s, unicode.IsSpace) != s:
		return errors.Wrapf(ErrInvalidField, "%s has leading or trailing whitespace", name)
	}
	return nil
}
