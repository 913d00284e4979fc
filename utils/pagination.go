package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ParsePagination reads page/limit query parameters with sane bounds
func ParsePagination(c echo.Context, defaultLimit int) (page, limit, skip int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	skip = (page - 1) * limit
	return page, limit, skip
}

// TotalPages derives the page count from a total
func TotalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}

// HasMore reports whether pages remain past the current one
func HasMore(page, limit int, total int64) bool {
	return int64(page*limit) < total
}
