package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type ScholarshipPostgreSQL struct {
	*DocumentPostgreSQL
}

func NewScholarshipPostgreSQL(db *gorm.DB, timeout time.Duration) *ScholarshipPostgreSQL {
	return &ScholarshipPostgreSQL{
		DocumentPostgreSQL: NewDocumentPostgreSQL(db, repositories.CollectionScholarships, timeout),
	}
}

func applyNameSearch(query *gorm.DB, search string) *gorm.DB {
	return query.Where("document->>'name' ILIKE ?", likePattern(search))
}

func (s *ScholarshipPostgreSQL) Search(ctx context.Context, filters repositories.ScholarshipFilters) ([]models.Document, error) {
	q, cancel := s.query(ctx)
	defer cancel()

	var records []documentRecord
	err := applyNameSearch(q, filters.Search).
		Order("created_at ASC").
		Order("id ASC").
		Offset(int(filters.Skip())).
		Limit(int(filters.Limit())).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search scholarships: %w", err)
	}
	return toDocuments(records)
}

func (s *ScholarshipPostgreSQL) Count(ctx context.Context, search string) (int64, error) {
	q, cancel := s.query(ctx)
	defer cancel()

	var count int64
	if err := applyNameSearch(q, search).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}
	return count, nil
}
