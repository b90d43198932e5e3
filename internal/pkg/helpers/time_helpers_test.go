package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	t.Run("valid duration", func(t *testing.T) {
		assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	})

	t.Run("empty string falls back to default", func(t *testing.T) {
		assert.Equal(t, 720*time.Hour, ParseDuration("", 720*time.Hour))
	})
}
