package domain

import (
	"time"

	"taskapp/internal/core/util"
)

// User is an identity record. The email is immutable after construction;
// uniqueness is enforced by the user service, not here.
type User struct {
	Email     string
	CreatedAt time.Time
}

// NewUser validates the email format. createdAt defaults to now when
// omitted, which covers both registration and rehydration from the store.
func NewUser(email string, createdAt ...time.Time) (User, error) {
	if email == "" || !util.IsValidEmail(email) {
		return User{}, NewError(KindBadRequest, "User must have a valid email")
	}

	at := time.Now()

	if len(createdAt) > 0 && !createdAt[0].IsZero() {
		at = createdAt[0]
	}

	return User{Email: email, CreatedAt: at}, nil
}
