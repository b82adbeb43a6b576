package repositories

import "context"

// Collection names shared by every backend.
const (
	CollectionUsers        = "users"
	CollectionScholarships = "scholarships"
	CollectionApplications = "applied"
	CollectionReviews      = "reviews"
)

// Repository groups the four collections behind one store handle.
type Repository interface {
	User() UserRepository
	Scholarship() ScholarshipRepository
	Application() DocumentRepository
	Review() DocumentRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close(ctx context.Context) error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize connects to the store, verifies it answers a ping and
	// prepares indexes or schema. The server must not start before it
	// succeeds.
	Initialize(ctx context.Context) error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
