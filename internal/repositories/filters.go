package repositories

import (
	"strconv"
	"strings"
)

const (
	DefaultPage = 1
	DefaultSize = 8
)

// NewScholarshipFilters parses raw query values. A missing, non-numeric or
// non-positive page becomes the first page; the same input for size falls
// back to DefaultSize.
func NewScholarshipFilters(page, size, search string) ScholarshipFilters {
	return ScholarshipFilters{
		Search: search,
		Page:   parsePositive(page, DefaultPage),
		Size:   parsePositive(size, DefaultSize),
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (f ScholarshipFilters) normalized() ScholarshipFilters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Size < 1 {
		f.Size = DefaultSize
	}
	return f
}

// Skip is (page-1)*size.
func (f ScholarshipFilters) Skip() int64 {
	f = f.normalized()
	return int64(f.Page-1) * int64(f.Size)
}

func (f ScholarshipFilters) Limit() int64 {
	return int64(f.normalized().Size)
}

// MatchesName reports whether name contains search case-insensitively. Stores
// that filter in memory use it; database backends translate the same rule
// into their own query language.
func MatchesName(name, search string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(search))
}
