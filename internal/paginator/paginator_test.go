package paginator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Paginator
	}{
		{"zero values", 0, 0, Paginator{Page: 1, Limit: 5}},
		{"negative values", -3, -1, Paginator{Page: 1, Limit: 5}},
		{"explicit values", 4, 25, Paginator{Page: 4, Limit: 25}},
		{"large limit", 1, 10000, Paginator{Page: 1, Limit: 10000}},
		{"max limit", 1, math.MaxInt, Paginator{Page: 1, Limit: math.MaxInt}},
		{"max page", math.MaxInt, 2, Paginator{Page: math.MaxInt, Limit: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.page, tt.limit))
		})
	}
}

func TestFromOptional(t *testing.T) {
	page, limit := 3, 7
	assert.Equal(t, Paginator{Page: 3, Limit: 7}, FromOptional(&page, &limit))
	assert.Equal(t, Paginator{Page: 1, Limit: 5}, FromOptional(nil, nil))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, New(1, 5).Offset())
	assert.Equal(t, 10, New(3, 5).Offset())
	assert.Equal(t, 40, New(5, 10).Offset())
}

func TestMetadata(t *testing.T) {
	md := New(2, 5).Metadata(12)
	assert.Equal(t, Metadata{
		TotalRecords: 12,
		FirstPage:    1,
		LastPage:     3,
		TotalPages:   3,
		Page:         2,
		Limit:        5,
	}, md)

	exact := New(1, 4).Metadata(8)
	assert.Equal(t, 2, exact.TotalPages)
	assert.Equal(t, 2, exact.LastPage)
}

func TestMetadataNoRecords(t *testing.T) {
	md := New(1, 5).Metadata(0)
	assert.Zero(t, md.TotalRecords)
	assert.Zero(t, md.TotalPages)
	assert.Zero(t, md.LastPage)
	assert.Equal(t, 1, md.Page)
	assert.Equal(t, 5, md.Limit)
}

func TestHugeValuesDoNotOverflow(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int
		offset      int
		totalPages  int
	}{
		{"max limit", 1, math.MaxInt, 3, 0, 1},
		{"limit above total", 1, 100000000000, 3, 0, 1},
		{"max limit max total", 1, math.MaxInt, math.MaxInt, 0, 1},
		{"limit one max total", 1, 1, math.MaxInt, 0, math.MaxInt},
		{"page past offset range", math.MaxInt/2 + 2, 2, 3, math.MaxInt, 2},
		{"max page max limit", math.MaxInt, math.MaxInt, 3, math.MaxInt, 1},
		{"largest exact offset", math.MaxInt/2 + 1, 2, 3, math.MaxInt - 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.page, tt.limit)
			assert.Equal(t, tt.offset, p.Offset())

			md := p.Metadata(tt.total)
			assert.Equal(t, tt.totalPages, md.TotalPages)
			assert.Equal(t, tt.totalPages, md.LastPage)
			assert.Equal(t, tt.total, md.TotalRecords)
			assert.Equal(t, tt.limit, md.Limit)
		})
	}
}
