package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/validator"
)

type userService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
	now            func() time.Time
}

func NewUserService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:           repo,
		eventPublisher: publisher,
		logger:         logger,
		validator:      validator,
		now:            time.Now,
	}
}

func (s *userService) timestamp() int64 {
	return s.now().UnixMilli()
}

func (s *userService) Upsert(ctx context.Context, req *UpsertUserRequest) (*UpsertUserResult, error) {
	if errs := s.validator.GetBusinessValidator().ValidateUpsert(req); len(errs) > 0 {
		return nil, errs
	}

	if req.Status != nil && *req.Status == models.StatusRequested {
		result, err := s.repo.User().SetStatus(ctx, req.Email, models.StatusRequested)
		if err != nil {
			return nil, fmt.Errorf("failed to request role change: %w", err)
		}
		if result.MatchedCount > 0 {
			s.logger.InfoContext(ctx, "Role change requested", "email", req.Email)
			events.PublishSafe(ctx, s.eventPublisher, s.logger, events.UserRoleRequested, map[string]interface{}{
				"email": req.Email,
			})
			return &UpsertUserResult{Result: result}, nil
		}
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		Image:     req.Image,
		Role:      models.RoleGuest,
		Timestamp: s.timestamp(),
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}

	result, err := s.repo.User().InsertIfAbsent(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if result.UpsertedCount > 0 {
		s.logger.InfoContext(ctx, "User created", "email", req.Email)
		return &UpsertUserResult{Result: result}, nil
	}

	existing, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing user: %w", err)
	}
	return &UpsertUserResult{User: existing}, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.User().List(ctx)
}

func (s *userService) Update(ctx context.Context, email string, req *UpdateUserRequest) (*models.UpdateResult, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if errs := s.validator.GetBusinessValidator().ValidateUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	return s.repo.User().Update(ctx, email, repositories.UserUpdate{
		Name:      req.Name,
		Image:     req.Image,
		Role:      req.Role,
		Status:    req.Status,
		Timestamp: s.timestamp(),
	})
}

func (s *userService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.repo.User().DeleteByID(ctx, id)
}

// IsAdmin reads the stored role on every call; roles are never cached
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
