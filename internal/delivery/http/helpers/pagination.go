package helpers

import (
	"net/http"
	"strconv"

	"eventticketing/internal/domain"
)

// Activity history pages.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePageRequest reads page and page_size from the query string. Missing,
// malformed or non-positive values use the defaults; page_size is capped at
// MaxPageSize.
func ParsePageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	return domain.PageRequest{
		Page:     positiveInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PageInfo describes the page returned by an activity listing.
// swagger:model PageInfo
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageInfo reports req against the total number of matching records.
func NewPageInfo(req domain.PageRequest, total int) PageInfo {
	return PageInfo{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		TotalPages: req.PageCount(total),
	}
}
