package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Alamin4D/battle-server-website/internal/cache"
	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/payment"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	TokenSecret      string
	TokenTTL         time.Duration
	// CacheSettleDelay should be at least the store timeout so every read
	// in flight during a write has finished before the second invalidation.
	CacheSettleDelay time.Duration
}

// Dependencies are the shared handles every service is built from
type Dependencies struct {
	RepoManager     repositories.RepositoryManager
	Cache           *cache.CacheManager
	EventPublisher  events.EventPublisher
	PaymentProvider payment.Provider
	Logger          *slog.Logger
	Validator       *validator.Validator
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps   Dependencies
	config ServiceManagerConfig

	tokenService       TokenService
	userService        UserService
	scholarshipService ScholarshipService
	applicationService SubmissionService
	reviewService      SubmissionService
	paymentService     PaymentService
	exportService      ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps Dependencies, config ServiceManagerConfig) ServiceManager {
	if deps.Cache == nil {
		deps.Cache = cache.NewCacheManager(nil)
	}
	return &serviceManager{deps: deps, config: config}
}

// Initialize builds every service around the initialized repository
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.config.TokenSecret == "" {
		return fmt.Errorf("token secret is required")
	}

	repo := sm.deps.RepoManager.GetRepository()
	if repo == nil {
		return fmt.Errorf("repository manager not initialized")
	}

	logger := sm.deps.Logger
	logger.Info("Initializing service manager")

	sm.tokenService = NewTokenService(sm.config.TokenSecret, sm.config.TokenTTL)
	sm.userService = NewUserService(repo, sm.deps.EventPublisher, logger, sm.deps.Validator)
	sm.scholarshipService = NewScholarshipService(repo, sm.deps.Cache, sm.deps.EventPublisher, logger, sm.config.CacheSettleDelay)
	sm.applicationService = NewApplicationService(repo, sm.deps.EventPublisher, logger)
	sm.reviewService = NewReviewService(repo, sm.deps.EventPublisher, logger)
	sm.paymentService = NewPaymentService(sm.deps.PaymentProvider, sm.deps.EventPublisher, logger)
	sm.exportService = NewExportService(repo, logger)

	sm.initialized = true
	logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) mustBeInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

// Service getters
func (sm *serviceManager) Token() TokenService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.tokenService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.userService
}

func (sm *serviceManager) Scholarship() ScholarshipService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.scholarshipService
}

func (sm *serviceManager) Application() SubmissionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.applicationService
}

func (sm *serviceManager) Review() SubmissionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.reviewService
}

func (sm *serviceManager) Payment() PaymentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.paymentService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.exportService
}

// HealthCheck reports per-dependency errors; a nil entry is healthy. The
// cache is only checked when one is configured.
func (sm *serviceManager) HealthCheck(ctx context.Context) map[string]error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	checks := map[string]error{}
	if sm.shutdown {
		checks["store"] = fmt.Errorf("service manager is shut down")
		return checks
	}

	checks["store"] = sm.deps.RepoManager.HealthCheck(ctx)
	if sm.deps.Cache.Client() != nil {
		checks["cache"] = sm.deps.Cache.HealthCheck(ctx)
	}
	return checks
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if sm.deps.EventPublisher != nil {
		if err := sm.deps.EventPublisher.Close(); err != nil {
			sm.deps.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	if err := sm.deps.RepoManager.Shutdown(ctx); err != nil {
		sm.deps.Logger.Error("Failed to shutdown repository manager", "error", err)
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down completed")
	return nil
}
