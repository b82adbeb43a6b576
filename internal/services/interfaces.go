package services

import (
	"context"
	"io"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/payment"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

type UpsertUserRequest = validator.UpsertUserRequest
type UpdateUserRequest = validator.UpdateUserRequest

// UpsertUserResult carries exactly one of User (the record already existed)
// or Result (a write happened).
type UpsertUserResult struct {
	User   *models.User
	Result *models.UpdateResult
}

// Claims is the opaque payload signed into identity tokens
type Claims map[string]interface{}

// Email returns the caller email carried by the token, or ""
func (c Claims) Email() string {
	s, _ := c["email"].(string)
	return s
}

// ===== SERVICE INTERFACES =====

type TokenService interface {
	Issue(claims Claims) (string, error)
	Verify(token string) (Claims, error)
}

type UserService interface {
	// Upsert runs on every login. An existing user sending status Requested
	// gets that status recorded; any other existing user is returned as is;
	// an unknown email is inserted.
	Upsert(ctx context.Context, req *UpsertUserRequest) (*UpsertUserResult, error)
	// GetByEmail returns nil without error when no user matches
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, email string, req *UpdateUserRequest) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type ScholarshipService interface {
	List(ctx context.Context) ([]models.Document, error)
	Search(ctx context.Context, filters repositories.ScholarshipFilters) ([]models.Document, error)
	Count(ctx context.Context, search string) (int64, error)
	// Get returns nil without error when no scholarship matches
	Get(ctx context.Context, id string) (models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// SubmissionService serves applications and reviews, both keyed to the
// submitting user through userData.email.
type SubmissionService interface {
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error)
	List(ctx context.Context) ([]models.Document, error)
	ListByEmail(ctx context.Context, email string) ([]models.Document, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price payment.Price) (*models.PaymentIntentResponse, error)
}

type ExportService interface {
	ExportApplications(ctx context.Context, w io.Writer) error
	ExportScholarships(ctx context.Context, w io.Writer) error
}

// ServiceManager interface for managing all services
type ServiceManager interface {
	Token() TokenService
	User() UserService
	Scholarship() ScholarshipService
	Application() SubmissionService
	Review() SubmissionService
	Payment() PaymentService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) map[string]error
	Shutdown(ctx context.Context) error
}
