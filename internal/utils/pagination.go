package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds skip/limit parameters parsed from the query string.
type Pagination struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPagination extracts skip and limit from the query parameters, falling
// back to defaults on anything unparsable.
func GetPagination(c *fiber.Ctx, defaultLimit, maxLimit int) Pagination {
	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{Skip: skip, Limit: limit}
}

// PaginatedResponse is the envelope for paginated list endpoints.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewPaginatedResponse(data interface{}, p Pagination) PaginatedResponse {
	return PaginatedResponse{Data: data, Pagination: p}
}
