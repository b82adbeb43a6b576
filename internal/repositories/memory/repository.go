package memory

import (
	"context"

	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// Repository is a process-local store used for local development
// (STORE_DRIVER=memory) and tests. Ids are UUIDs.
type Repository struct {
	user        *UserRepo
	scholarship *ScholarshipRepo
	application *DocumentRepo
	review      *DocumentRepo
}

func NewRepository() *Repository {
	return &Repository{
		user:        NewUserRepo(),
		scholarship: NewScholarshipRepo(),
		application: NewDocumentRepo(),
		review:      NewDocumentRepo(),
	}
}

func (r *Repository) User() repositories.UserRepository               { return r.user }
func (r *Repository) Scholarship() repositories.ScholarshipRepository { return r.scholarship }
func (r *Repository) Application() repositories.DocumentRepository    { return r.application }
func (r *Repository) Review() repositories.DocumentRepository         { return r.review }
func (r *Repository) Ping(ctx context.Context) error                  { return nil }
func (r *Repository) Close(ctx context.Context) error                 { return nil }

// RepositoryManager satisfies repositories.RepositoryManager.
type RepositoryManager struct {
	repo *Repository
}

func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{}
}

func (m *RepositoryManager) Initialize(ctx context.Context) error {
	m.repo = NewRepository()
	return nil
}

func (m *RepositoryManager) GetRepository() repositories.Repository { return m.repo }

func (m *RepositoryManager) HealthCheck(ctx context.Context) error { return nil }

func (m *RepositoryManager) Shutdown(ctx context.Context) error { return nil }
