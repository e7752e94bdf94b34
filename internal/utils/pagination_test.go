package utils_test

import (
	"testing"

	"github.com/Anieto86/LabLink/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndNormalizePagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative", -1, -5, 1, 20},
		{"capped", 3, 500, 3, 100},
		{"passthrough", 2, 50, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := utils.ValidateAndNormalizePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPS, pageSize)
		})
	}
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := utils.CalculatePaginationInfo(45, 2, 20)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := utils.CalculatePaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestParsePaginationFromQuery(t *testing.T) {
	page, pageSize := utils.ParsePaginationFromQuery("3", "50")
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, pageSize)

	page, pageSize = utils.ParsePaginationFromQuery("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)

	page, pageSize = utils.ParsePaginationFromQuery("bad", "101")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)
}
