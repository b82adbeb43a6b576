package memory

import (
	"context"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type ScholarshipRepo struct {
	*DocumentRepo
}

func NewScholarshipRepo() *ScholarshipRepo {
	return &ScholarshipRepo{DocumentRepo: NewDocumentRepo()}
}

// matchesSearch mirrors the database backends: documents without a string
// name never match, not even an empty search.
func matchesSearch(search string) func(models.Document) bool {
	return func(doc models.Document) bool {
		name, ok := doc["name"].(string)
		return ok && repositories.MatchesName(name, search)
	}
}

func (r *ScholarshipRepo) Search(ctx context.Context, filters repositories.ScholarshipFilters) ([]models.Document, error) {
	matched := r.filter(matchesSearch(filters.Search))

	skip, limit := filters.Skip(), filters.Limit()
	if skip >= int64(len(matched)) {
		return []models.Document{}, nil
	}
	end := skip + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[skip:end], nil
}

func (r *ScholarshipRepo) Count(ctx context.Context, search string) (int64, error) {
	return int64(len(r.filter(matchesSearch(search)))), nil
}
