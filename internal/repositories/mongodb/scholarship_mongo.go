package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type ScholarshipMongo struct {
	*DocumentMongo
}

func NewScholarshipMongo(coll *mongo.Collection, timeout time.Duration) *ScholarshipMongo {
	return &ScholarshipMongo{DocumentMongo: NewDocumentMongo(coll, timeout)}
}

// Search returns one page of scholarships whose name contains the search
// term. Results are ordered by _id so consecutive pages never overlap.
func (s *ScholarshipMongo) Search(ctx context.Context, filters repositories.ScholarshipFilters) ([]models.Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(filters.Skip()).
		SetLimit(filters.Limit())

	return s.find(ctx, nameFilter(filters.Search), opts)
}

func (s *ScholarshipMongo) Count(ctx context.Context, search string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	count, err := s.coll.CountDocuments(ctx, nameFilter(search))
	if err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}
	return count, nil
}
