package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewJWT("test-secret")

	tokenString, err := issuer.Issue("user@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	email, err := issuer.Verify(tokenString)

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret-a").Issue("user@example.com")
	assert.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(tokenString)

	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewJWT("test-secret").Verify("not.a.token")

	assert.Error(t, err)
}

func TestVerifyRejectsMissingEmailClaim(t *testing.T) {
	issuer := NewJWT("test-secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"})
	tokenString, err := raw.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = issuer.Verify(tokenString)

	assert.Error(t, err)
}
