package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type DocumentRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Document
}

func NewDocumentRepo() *DocumentRepo {
	return &DocumentRepo{byID: make(map[string]models.Document)}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return nil
}

func copyDocument(doc models.Document) models.Document {
	out := make(models.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (r *DocumentRepo) Insert(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	stored := doc.WithoutID()
	stored[models.IDField] = id

	r.byID[id] = stored
	r.order = append(r.order, id)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id string) (models.Document, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return copyDocument(doc), nil
}

func (r *DocumentRepo) List(ctx context.Context) ([]models.Document, error) {
	return r.filter(func(models.Document) bool { return true }), nil
}

func (r *DocumentRepo) ListByOwnerEmail(ctx context.Context, email string) ([]models.Document, error) {
	return r.filter(func(doc models.Document) bool { return doc.OwnerEmail() == email }), nil
}

func (r *DocumentRepo) Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.byID[id]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	updated := copyDocument(doc)
	for k, v := range patch.WithoutID() {
		updated[k] = v
	}
	r.byID[id] = updated
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// filter returns copies of matching documents in insertion order.
func (r *DocumentRepo) filter(match func(models.Document) bool) []models.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Document, 0, len(r.order))
	for _, id := range r.order {
		doc := r.byID[id]
		if match(doc) {
			out = append(out, copyDocument(doc))
		}
	}
	return out
}
