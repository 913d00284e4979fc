package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit page and limit", "page=3&limit=5", 3, 5, 10},
		{"zero page clamps to one", "page=0", 1, 10, 0},
		{"negative page clamps to one", "page=-2", 1, 10, 0},
		{"zero limit uses default", "limit=0", 1, 10, 0},
		{"limit capped at 100", "limit=500", 1, 100, 0},
		{"garbage values fall back", "page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, skip := ParsePagination(paginationContext(tt.query), 10)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
}

func TestHasMore(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  bool
	}{
		{"empty result", 1, 10, 0, false},
		{"single partial page", 1, 10, 7, false},
		{"exactly one full page", 1, 10, 10, false},
		{"one past a full page", 1, 10, 11, true},
		{"middle page", 2, 10, 25, true},
		{"last page", 3, 10, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMore(tt.page, tt.limit, tt.total))
		})
	}
}
