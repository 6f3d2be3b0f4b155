package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfDomainError(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(NewError(KindConflict, "Email is already in use")))
	assert.Equal(t, KindNotFound, KindOf(NewError(KindNotFound, "Task not found")))
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", NewError(KindNotFound, "user not found"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
}

func TestKindOfForeignErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
}

func TestIsKindNilError(t *testing.T) {
	assert.False(t, IsKind(nil, KindInternal))
}

func TestErrorMessagePassesVerbatim(t *testing.T) {
	err := NewError(KindBadRequest, "userEmail is required")

	assert.Equal(t, "userEmail is required", err.Error())
}
