package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total      int
	PerPage    int
	Current    int
	Offset     int
	TotalPages int
}

// NewPagination clamps current into [1, TotalPages]. A non-positive perPage
// puts everything on one page.
func NewPagination(total, perPage, current int) *PaginationInfo {
	if perPage <= 0 {
		perPage = max(total, 1)
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	current = min(max(current, 1), totalPages)

	return &PaginationInfo{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		Offset:     (current - 1) * perPage,
		TotalPages: totalPages,
	}
}

// Bounds returns the half-open slice range of the current page.
func (p *PaginationInfo) Bounds() (lo, hi int) {
	lo = min(p.Offset, p.Total)
	hi = min(p.Offset+p.PerPage, p.Total)
	return lo, hi
}

func (p *PaginationInfo) HasNext() bool { return p.Current < p.TotalPages }
func (p *PaginationInfo) HasPrev() bool { return p.Current > 1 }

func (p *PaginationInfo) FormatSummary() string {
	if p.Total == 0 {
		return "No entries"
	}
	lo, hi := p.Bounds()
	if p.TotalPages == 1 {
		return fmt.Sprintf("Showing %d-%d of %d entr%s", lo+1, hi, p.Total, plural(p.Total))
	}
	return fmt.Sprintf("Showing %d-%d of %d entr%s (page %d of %d)",
		lo+1, hi, p.Total, plural(p.Total), p.Current, p.TotalPages)
}

// FormatNavigation returns navigation hints for CLI
func (p *PaginationInfo) FormatNavigation() string {
	if p.TotalPages <= 1 {
		return ""
	}
	var hints []string
	if p.HasPrev() {
		hints = append(hints, fmt.Sprintf("use --page %d for previous", p.Current-1))
	}
	if p.HasNext() {
		hints = append(hints, fmt.Sprintf("use --page %d for next", p.Current+1))
	}
	return strings.Join(hints, ", ")
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

// ParsePage accepts a page number or "first"/"last".
func ParsePage(s string, totalPages int) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "first", "start":
		return 1, nil
	case "last", "end":
		return max(totalPages, 1), nil
	}
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1, fmt.Errorf("invalid page number: %q", s)
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page, nil
}
