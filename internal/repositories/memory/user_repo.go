package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type UserRepo struct {
	mu      sync.RWMutex
	order   []string
	byEmail map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byEmail: make(map[string]models.User)}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.order))
	for _, email := range r.order {
		u := r.byEmail[email]
		users = append(users, &u)
	}
	return users, nil
}

func (r *UserRepo) InsertIfAbsent(ctx context.Context, user *models.User) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}

	u := *user
	u.ID = uuid.NewString()
	r.byEmail[u.Email] = u
	r.order = append(r.order, u.Email)
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &u.ID}, nil
}

func (r *UserRepo) SetStatus(ctx context.Context, email string, status models.UserStatus) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if u.Status != status {
		modified = 1
	}
	u.Status = status
	r.byEmail[email] = u
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (r *UserRepo) Update(ctx context.Context, email string, update repositories.UserUpdate) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Image != nil {
		u.Image = *update.Image
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Status != nil {
		u.Status = *update.Status
	}
	u.Timestamp = update.Timestamp
	r.byEmail[email] = u
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, email := range r.order {
		if r.byEmail[email].ID == id {
			delete(r.byEmail, email)
			r.order = append(r.order[:i], r.order[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}
