package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alamin4D/battle-server-website/internal/cache"
	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type scholarshipService struct {
	repo           repositories.Repository
	cache          *cache.CacheManager
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	// settleDelay is how long after a write the cached reads are dropped a
	// second time. Zero disables the second pass.
	settleDelay    time.Duration
}

func NewScholarshipService(repo repositories.Repository, cacheManager *cache.CacheManager, publisher events.EventPublisher, logger *slog.Logger, settleDelay time.Duration) ScholarshipService {
	if cacheManager == nil {
		cacheManager = cache.NewCacheManager(nil)
	}
	return &scholarshipService{
		repo:           repo,
		cache:          cacheManager,
		eventPublisher: publisher,
		logger:         logger,
		settleDelay:    settleDelay,
	}
}

func (s *scholarshipService) List(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	err := s.cache.Scholarship.CacheOrExecute(ctx, "all", &docs, cache.ScholarshipCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Scholarship().List(ctx)
	})
	return nonNilDocuments(docs), err
}

func (s *scholarshipService) Search(ctx context.Context, filters repositories.ScholarshipFilters) ([]models.Document, error) {
	key := fmt.Sprintf("list:%d:%d:%s", filters.Page, filters.Size, filters.Search)

	var docs []models.Document
	err := s.cache.Scholarship.CacheOrExecute(ctx, key, &docs, cache.ScholarshipCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Scholarship().Search(ctx, filters)
	})
	return nonNilDocuments(docs), err
}

func (s *scholarshipService) Count(ctx context.Context, search string) (int64, error) {
	var count int64
	err := s.cache.Stats.CacheOrExecute(ctx, "count:"+search, &count, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Scholarship().Count(ctx, search)
	})
	return count, err
}

func (s *scholarshipService) Get(ctx context.Context, id string) (models.Document, error) {
	var doc models.Document
	err := s.cache.Scholarship.CacheOrExecute(ctx, "id:"+id, &doc, cache.ScholarshipCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Scholarship().GetByID(ctx, id)
	})
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (s *scholarshipService) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	result, err := s.repo.Scholarship().Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create scholarship: %w", err)
	}

	s.invalidate(ctx, "")
	events.PublishSafe(ctx, s.eventPublisher, s.logger, events.ScholarshipCreated, map[string]interface{}{
		"id":   result.InsertedID,
		"name": doc.Name(),
	})
	return result, nil
}

func (s *scholarshipService) Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error) {
	if len(patch.WithoutID()) == 0 {
		return nil, ErrEmptyUpdate
	}
	result, err := s.repo.Scholarship().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return result, nil
}

func (s *scholarshipService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	result, err := s.repo.Scholarship().Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return result, nil
}

// invalidate drops cached reads now and again after settleDelay. A read that
// started before the write may store its stale result after the first
// delete; the second delete removes it, so stale data outlives a write by at
// most settleDelay provided store reads finish within it.
func (s *scholarshipService) invalidate(ctx context.Context, id string) {
	cache.InvalidateScholarshipCache(ctx, s.cache, id)
	if s.settleDelay <= 0 || s.cache.Client() == nil {
		return
	}

	bg := context.WithoutCancel(ctx)
	time.AfterFunc(s.settleDelay, func() {
		cache.InvalidateScholarshipCache(bg, s.cache, id)
	})
}

// nonNilDocuments keeps empty lists encoding as [] rather than null
func nonNilDocuments(docs []models.Document) []models.Document {
	if docs == nil {
		return []models.Document{}
	}
	return docs
}
