package domain_test

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"passkeeper/internal/domain"
)

func TestKindOf_ThroughWrapping(t *testing.T) {
	base := domain.NewError(domain.KindCorrupted, "load", errors.New("bad magic"))
	wrapped := errors.Wrap(base, "loading passwords")

	assert.Equal(t, domain.KindCorrupted, domain.KindOf(wrapped))
	assert.True(t, domain.IsKind(wrapped, domain.KindCorrupted))
	assert.False(t, domain.IsKind(wrapped, domain.KindIO))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, domain.KindUnknown, domain.KindOf(io.EOF))
	assert.False(t, domain.IsKind(nil, domain.KindUnknown))
}

func TestError_UnwrapAndCause(t *testing.T) {
	err := domain.NewError(domain.KindIO, "store", io.ErrShortWrite)

	assert.True(t, errors.Is(err, io.ErrShortWrite))
	assert.Equal(t, io.ErrShortWrite, errors.Cause(err))
	assert.Equal(t, "store: io failure: short write", err.Error())
}

func TestError_NoCause(t *testing.T) {
	err := domain.NewError(domain.KindLocked, "load", nil)
	assert.Equal(t, "load: locked", err.Error())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "load corrupted", domain.OutcomeLoadCorrupted.String())
	assert.True(t, domain.OutcomeStoreSucceeded.Succeeded())
	assert.False(t, domain.OutcomeLoadFailed.Succeeded())
}

func TestRecord_StringHidesSecret(t *testing.T) {
	r := domain.Record{Label: "email", Secret: "s3cr3t"}
	assert.Equal(t, "email", r.String())
}
