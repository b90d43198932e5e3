package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaan/socialsphere/internal/pkg/apperrors"
)

func TestValidateEmail(t *testing.T) {
	s := &AuthService{}

	valid := []string{
		"kaan@example.com",
		"first.last+tag@sub.example.org",
		"UPPER@EXAMPLE.COM",
	}
	for _, email := range valid {
		assert.NoError(t, s.validateEmail(email), email)
	}

	invalid := []string{
		"",
		"   ",
		"no-at-sign.example.com",
		"kaan@",
		"@example.com",
		"kaan@example",
	}
	for _, email := range invalid {
		assert.ErrorIs(t, s.validateEmail(email), apperrors.ErrValidationFailed, email)
	}
}

func TestValidatePassword(t *testing.T) {
	s := &AuthService{}

	assert.NoError(t, s.validatePassword("passw0rd"))
	assert.NoError(t, s.validatePassword("Abcdefg1"))

	invalid := []string{
		"short1",      // too short
		"lettersonly", // no digit
		"12345678",    // no letter
	}
	for _, password := range invalid {
		assert.ErrorIs(t, s.validatePassword(password), apperrors.ErrValidationFailed, password)
	}
}

func TestValidateInterests(t *testing.T) {
	s := &AuthService{}

	assert.NoError(t, s.validateInterests([]string{"Technology", "Music"}))

	assert.ErrorIs(t, s.validateInterests(nil), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, s.validateInterests([]string{}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, s.validateInterests([]string{"Technology", "Astrology"}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, s.validateInterests([]string{"technology"}), apperrors.ErrValidationFailed)
}
