package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"negative page defaults to first", -2, 10, 0, 10},
		{"zero size defaults", 2, 0, 10, DefaultPageSize},
		{"oversized size defaults", 2, MaxPageSize + 1, 10, DefaultPageSize},
		{"max size accepted", 2, MaxPageSize, 100, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("partial last page rounds up", func(t *testing.T) {
		info := NewPaginationInfo(25, 2, 10)

		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(25), info.TotalItems)
	})

	t.Run("empty result keeps a single page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)

		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("page beyond total clamps", func(t *testing.T) {
		info := NewPaginationInfo(10, 5, 10)

		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("invalid size defaults", func(t *testing.T) {
		info := NewPaginationInfo(30, 1, 0)

		assert.Equal(t, DefaultPageSize, info.PageSize)
		assert.Equal(t, 3, info.TotalPages)
	})
}
