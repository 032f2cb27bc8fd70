package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New("INVALID_REQUEST", "invalid request: some or all query parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	derived := ErrConfiguration.Msg("missing stats processor for sport %q", "hockey")
	wrapped := errors.Wrap(derived, "failed to compute stats")

	assert.True(t, errors.Is(wrapped, ErrConfiguration))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.True(t, IsFatal(wrapped))
	assert.False(t, IsFatal(ErrInvalidReq))
}

func TestNewInvalidViolationsDoesNotTouchSentinel(t *testing.T) {
	e := NewInvalidViolations([]string{"statType"})

	assert.NotNil(t, e.Extras)
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.True(t, errors.Is(e, ErrInvalidReq))
}
