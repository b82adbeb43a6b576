package repositories

import (
	"context"

	"github.com/Alamin4D/battle-server-website/internal/models"
)

// UserUpdate lists the profile fields a PATCH may change. Nil fields are left
// untouched; Timestamp is always written.
type UserUpdate struct {
	Name      *string
	Image     *string
	Role      *models.UserRole
	Status    *models.UserStatus
	Timestamp int64
}

// UserRepository interface for user operations. Email is the natural key.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)

	// InsertIfAbsent atomically creates the user unless one with the same
	// email exists. UpsertedCount is 1 only when a record was created.
	InsertIfAbsent(ctx context.Context, user *models.User) (*models.UpdateResult, error)
	// SetStatus changes the status of an existing user; it never inserts.
	SetStatus(ctx context.Context, email string, status models.UserStatus) (*models.UpdateResult, error)
	Update(ctx context.Context, email string, update UserUpdate) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
}
