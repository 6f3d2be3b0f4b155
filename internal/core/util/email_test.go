package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last+tag@sub.domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@", false},
		{"user @example.com", false},
		{"user@exa mple.com", false},
		{"user@@example.com", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, IsValidEmail(c.email), "email: %q", c.email)
	}
}
