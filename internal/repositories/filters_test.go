package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScholarshipFilters(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
		wantSkip int64
	}{
		{name: "defaults", page: "", size: "", wantPage: 1, wantSize: 8, wantSkip: 0},
		{name: "explicit", page: "3", size: "5", wantPage: 3, wantSize: 5, wantSkip: 10},
		{name: "page zero clamps", page: "0", size: "8", wantPage: 1, wantSize: 8, wantSkip: 0},
		{name: "negative page clamps", page: "-4", size: "8", wantPage: 1, wantSize: 8, wantSkip: 0},
		{name: "non-numeric", page: "abc", size: "xyz", wantPage: 1, wantSize: 8, wantSkip: 0},
		{name: "zero size defaults", page: "2", size: "0", wantPage: 2, wantSize: 8, wantSkip: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewScholarshipFilters(tt.page, tt.size, "x")
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantSize, f.Size)
			assert.Equal(t, tt.wantSkip, f.Skip())
			assert.Equal(t, int64(tt.wantSize), f.Limit())
			assert.Equal(t, "x", f.Search)
		})
	}
}

func TestScholarshipFilters_ZeroValueIsFirstPage(t *testing.T) {
	var f ScholarshipFilters
	assert.Equal(t, int64(0), f.Skip())
	assert.Equal(t, int64(DefaultSize), f.Limit())
}

func TestMatchesName(t *testing.T) {
	assert.True(t, MatchesName("Scholarship A", "schol"))
	assert.True(t, MatchesName("Scholarship A", ""))
	assert.False(t, MatchesName("Grant", "schol"))
}
