package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain term", "gaming", "%gaming%"},
		{"percent escaped", "50%", `%50\%%`},
		{"underscore escaped", "tech_talk", `%tech\_talk%`},
		{"backslash escaped", `a\b`, `%a\\b%`},
		{"empty term matches everything", "", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLikePattern(tt.term))
		})
	}
}
