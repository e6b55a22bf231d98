package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{0, 10, 1, 10},
		{-3, 10, 1, 10},
		{1, 10, 1, 10},
		{5, 25, 5, 25},
		{2, 0, 2, DefaultPageSize},
		{2, -1, 2, DefaultPageSize},
	}
	for _, tt := range tests {
		page, pageSize := NormalizePage(tt.page, tt.pageSize)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPageSize, pageSize)
	}
}
