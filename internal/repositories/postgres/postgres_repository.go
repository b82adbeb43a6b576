package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface on top of
// JSONB columns, one table per collection.
type PostgreSQLRepository struct {
	db *gorm.DB

	user        repositories.UserRepository
	scholarship repositories.ScholarshipRepository
	application repositories.DocumentRepository
	review      repositories.DocumentRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB *gorm.DB
	// Timeout bounds every single store call.
	Timeout time.Duration
}

// NewPostgreSQLRepository creates a new repository with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) *PostgreSQLRepository {
	return &PostgreSQLRepository{
		db:          config.DB,
		user:        NewUserPostgreSQL(config.DB, config.Timeout),
		scholarship: NewScholarshipPostgreSQL(config.DB, config.Timeout),
		application: NewDocumentPostgreSQL(config.DB, repositories.CollectionApplications, config.Timeout),
		review:      NewDocumentPostgreSQL(config.DB, repositories.CollectionReviews, config.Timeout),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

func (r *PostgreSQLRepository) Scholarship() repositories.ScholarshipRepository {
	return r.scholarship
}

func (r *PostgreSQLRepository) Application() repositories.DocumentRepository {
	return r.application
}

func (r *PostgreSQLRepository) Review() repositories.DocumentRepository {
	return r.review
}

// Ping checks database connectivity
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes database connections
func (r *PostgreSQLRepository) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Migrate creates the users table and one JSONB table per document
// collection.
func (r *PostgreSQLRepository) Migrate(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(&userRecord{}); err != nil {
		return fmt.Errorf("failed to migrate users: %w", err)
	}
	for _, table := range []string{
		repositories.CollectionScholarships,
		repositories.CollectionApplications,
		repositories.CollectionReviews,
	} {
		if err := db.Table(table).AutoMigrate(&documentRecord{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table, err)
		}
	}
	return nil
}

// RepositoryManager implements repositories.RepositoryManager
type RepositoryManager struct {
	config RepositoryConfig
	repo   *PostgreSQLRepository
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(config RepositoryConfig) *RepositoryManager {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &RepositoryManager{config: config}
}

// Initialize pings the database and migrates the schema.
func (rm *RepositoryManager) Initialize(ctx context.Context) error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	repo := NewPostgreSQLRepository(rm.config)

	pingCtx, cancel := context.WithTimeout(ctx, rm.config.Timeout)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	rm.repo = repo
	return nil
}

// GetRepository returns the repository instance
func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

// HealthCheck performs health check on all repositories
func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return rm.repo.Ping(ctx)
}

// Shutdown gracefully shuts down the repository manager
func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}
	return rm.repo.Close(ctx)
}
