package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type submissionService struct {
	store          repositories.DocumentRepository
	createdEvent   events.EventType
	eventPublisher events.EventPublisher
	logger         *slog.Logger
}

// NewApplicationService serves the applied collection
func NewApplicationService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) SubmissionService {
	return &submissionService{
		store:          repo.Application(),
		createdEvent:   events.ApplicationSubmitted,
		eventPublisher: publisher,
		logger:         logger.With("collection", repositories.CollectionApplications),
	}
}

// NewReviewService serves the reviews collection
func NewReviewService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) SubmissionService {
	return &submissionService{
		store:          repo.Review(),
		createdEvent:   events.ReviewCreated,
		eventPublisher: publisher,
		logger:         logger.With("collection", repositories.CollectionReviews),
	}
}

func (s *submissionService) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	result, err := s.store.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	data := map[string]interface{}{
		"id":    result.InsertedID,
		"email": doc.OwnerEmail(),
	}
	if id, ok := doc["scholarshipId"]; ok {
		data["scholarshipId"] = id
	}
	events.PublishSafe(ctx, s.eventPublisher, s.logger, s.createdEvent, data)
	return result, nil
}

func (s *submissionService) Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error) {
	if len(patch.WithoutID()) == 0 {
		return nil, ErrEmptyUpdate
	}
	return s.store.Update(ctx, id, patch)
}

func (s *submissionService) List(ctx context.Context) ([]models.Document, error) {
	docs, err := s.store.List(ctx)
	return nonNilDocuments(docs), err
}

func (s *submissionService) ListByEmail(ctx context.Context, email string) ([]models.Document, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	docs, err := s.store.ListByOwnerEmail(ctx, email)
	return nonNilDocuments(docs), err
}

func (s *submissionService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.store.Delete(ctx, id)
}
