package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaan/socialsphere/internal/app/models/dto"
)

func TestAuthorSummary(t *testing.T) {
	username := "kaan"
	photo := "http://localhost:8080/uploads/abc.png"

	t.Run("existing author", func(t *testing.T) {
		summary := authorSummary(7, &username, &photo)

		assert.Equal(t, int64(7), summary.ID)
		assert.Equal(t, "kaan", summary.Username)
		if assert.NotNil(t, summary.ProfilePhoto) {
			assert.Equal(t, photo, *summary.ProfilePhoto)
		}
	})

	t.Run("author without photo", func(t *testing.T) {
		summary := authorSummary(7, &username, nil)

		assert.Equal(t, "kaan", summary.Username)
		assert.Nil(t, summary.ProfilePhoto)
	})

	t.Run("deleted author degrades to placeholder", func(t *testing.T) {
		summary := authorSummary(7, nil, &photo)

		assert.Equal(t, int64(7), summary.ID)
		assert.Equal(t, dto.PlaceholderUsername, summary.Username)
		assert.Nil(t, summary.ProfilePhoto)
	})
}

func TestUnionCategories(t *testing.T) {
	t.Run("interests come first, duplicates removed", func(t *testing.T) {
		union := unionCategories(
			[]string{"Music", "Gaming"},
			[]string{"Gaming", "Science", "Music", "Art"},
		)

		assert.Equal(t, []string{"Music", "Gaming", "Science", "Art"}, union)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, unionCategories(nil, nil))
	})

	t.Run("one side empty", func(t *testing.T) {
		assert.Equal(t, []string{"Food"}, unionCategories(nil, []string{"Food"}))
	})
}
