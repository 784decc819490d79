package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int64
		wantNext *PageRef
		wantPrev *PageRef
	}{
		{name: "empty result", page: 1, limit: 10, total: 0},
		{name: "single page", page: 1, limit: 10, total: 10},
		{name: "first of many", page: 1, limit: 10, total: 11, wantNext: &PageRef{Page: 2, Limit: 10}},
		{name: "middle page", page: 2, limit: 5, total: 12, wantNext: &PageRef{Page: 3, Limit: 5}, wantPrev: &PageRef{Page: 1, Limit: 5}},
		{name: "last page", page: 3, limit: 5, total: 12, wantPrev: &PageRef{Page: 2, Limit: 5}},
		{name: "past the end", page: 9, limit: 5, total: 12, wantPrev: &PageRef{Page: 8, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantNext, p.Next)
			assert.Equal(t, tt.wantPrev, p.Prev)
		})
	}
}
