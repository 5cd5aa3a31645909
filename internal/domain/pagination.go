package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps Offset within int range for any page size.
	MaxPage = math.MaxInt32
)

// CountMode selects how list endpoints compute their pagination descriptor.
type CountMode string

const (
	// CountExact runs a COUNT query with the list filters.
	CountExact CountMode = "exact"
	// CountEstimate skips the COUNT query and infers hasNext from a full page.
	CountEstimate CountMode = "estimate"
)

// ParseCountMode falls back to CountExact for unknown values.
func ParseCountMode(s string) CountMode {
	if CountMode(strings.ToLower(strings.TrimSpace(s))) == CountEstimate {
		return CountEstimate
	}
	return CountExact
}

// PageRequest is a bounded page/pageSize pair.
type PageRequest struct {
	Page     int
	PageSize int
	Mode     CountMode
}

// NewPageRequest parses raw query values. Missing or unparseable values use the defaults,
// page is clamped to [1, MaxPage] and pageSize to [1, MaxPageSize].
func NewPageRequest(rawPage, rawPageSize string, mode CountMode) PageRequest {
	page := clamp(parseIntOr(rawPage, DefaultPage), 1, MaxPage)
	pageSize := clamp(parseIntOr(rawPageSize, DefaultPageSize), 1, MaxPageSize)
	if mode == "" {
		mode = CountExact
	}
	return PageRequest{Page: page, PageSize: pageSize, Mode: mode}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// parseIntOr reads the leading integer of raw ("12abc" -> 12). Out of range values
// saturate to the int extremes. A zero or unparseable value yields def.
func parseIntOr(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) {
		c := raw[end]
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if errors.Is(err, strconv.ErrRange) {
		// Atoi returns the saturated value with ErrRange.
		return n
	}
	if err != nil || n == 0 {
		return def
	}
	return n
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit is the number of rows fetched for this page.
func (p PageRequest) Limit() int {
	return p.PageSize
}

// Pagination is the descriptor returned with every list.
// Total and TotalPages are nil when the page was fetched without a count.
type Pagination struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Total      *int64 `json:"total"`
	TotalPages *int64 `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
}

// NewExactPagination builds the descriptor from a known total row count.
func NewExactPagination(p PageRequest, total int64) Pagination {
	totalPages := int64(0)
	if total > 0 {
		totalPages = (total + int64(p.PageSize) - 1) / int64(p.PageSize)
	}
	return Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      &total,
		TotalPages: &totalPages,
		HasNext:    int64(p.Page) < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// NewEstimatedPagination builds the descriptor without a count: a full page implies a next page.
func NewEstimatedPagination(p PageRequest, returned int) Pagination {
	return Pagination{
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  returned == p.PageSize,
		HasPrev:  p.Page > 1,
	}
}

// NewPagination dispatches on the request mode. total is ignored in estimate mode.
func NewPagination(p PageRequest, total *int64, returned int) Pagination {
	if p.Mode == CountEstimate || total == nil {
		return NewEstimatedPagination(p, returned)
	}
	return NewExactPagination(p, *total)
}
