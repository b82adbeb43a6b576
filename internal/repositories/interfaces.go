package repositories

import (
	"context"

	"github.com/Alamin4D/battle-server-website/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// ScholarshipFilters drives the paginated scholarship listing. Build it with
// NewScholarshipFilters so page and size are already normalized.
type ScholarshipFilters struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
	Size   int    `json:"size"`
}

// ===== REPOSITORY INTERFACES =====

// DocumentRepository stores schemaless documents in a single collection.
type DocumentRepository interface {
	Insert(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	GetByID(ctx context.Context, id string) (models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	// ListByOwnerEmail matches the embedded userData.email field.
	ListByOwnerEmail(ctx context.Context, email string) ([]models.Document, error)
	// Update applies patch with $set semantics: listed keys are replaced,
	// everything else is kept.
	Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// ScholarshipRepository adds the name search used by the listing endpoints.
type ScholarshipRepository interface {
	DocumentRepository
	Search(ctx context.Context, filters ScholarshipFilters) ([]models.Document, error)
	Count(ctx context.Context, search string) (int64, error)
}
