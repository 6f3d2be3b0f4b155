package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUserSuccess(t *testing.T) {
	user, err := NewUser("user@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUserKeepsGivenCreatedAt(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	user, err := NewUser("user@example.com", at)

	assert.NoError(t, err)
	assert.Equal(t, at, user.CreatedAt)
}

func TestNewUserInvalidEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "user@nodot", "a b@c.com"} {
		_, err := NewUser(email)

		assert.Error(t, err)
		assert.Equal(t, "User must have a valid email", err.Error())
		assert.True(t, IsKind(err, KindBadRequest))
	}
}
