package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, IsValidCategory(category), category)
	}

	assert.False(t, IsValidCategory("Astrology"))
	assert.False(t, IsValidCategory("technology"))
	assert.False(t, IsValidCategory(""))
}

func TestIsValidLikeableKind(t *testing.T) {
	assert.True(t, IsValidLikeableKind("post"))
	assert.True(t, IsValidLikeableKind("comment"))
	assert.True(t, IsValidLikeableKind("reply"))

	assert.False(t, IsValidLikeableKind("Post"))
	assert.False(t, IsValidLikeableKind("community"))
	assert.False(t, IsValidLikeableKind(""))
}
