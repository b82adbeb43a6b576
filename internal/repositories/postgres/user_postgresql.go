package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type userRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;not null;size:255"`
	Name      string `gorm:"size:255"`
	Image     string `gorm:"size:1000"`
	Role      string `gorm:"size:32"`
	Status    string `gorm:"size:32"`
	Timestamp int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRecord) TableName() string {
	return repositories.CollectionUsers
}

func (r *userRecord) toModel() *models.User {
	return &models.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Image:     r.Image,
		Role:      models.UserRole(r.Role),
		Status:    models.UserStatus(r.Status),
		Timestamp: r.Timestamp,
	}
}

type UserPostgreSQL struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewUserPostgreSQL(db *gorm.DB, timeout time.Duration) *UserPostgreSQL {
	return &UserPostgreSQL{db: db, timeout: timeout}
}

func (u *UserPostgreSQL) query(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	return u.db.WithContext(ctx), cancel
}

func (u *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q, cancel := u.query(ctx)
	defer cancel()

	var record userRecord
	if err := q.Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return record.toModel(), nil
}

func (u *UserPostgreSQL) List(ctx context.Context) ([]*models.User, error) {
	q, cancel := u.query(ctx)
	defer cancel()

	var records []userRecord
	if err := q.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*models.User, 0, len(records))
	for i := range records {
		users = append(users, records[i].toModel())
	}
	return users, nil
}

// InsertIfAbsent relies on ON CONFLICT (email) DO NOTHING so the existence
// check and the insert are one statement.
func (u *UserPostgreSQL) InsertIfAbsent(ctx context.Context, user *models.User) (*models.UpdateResult, error) {
	record := userRecord{
		ID:        uuid.NewString(),
		Email:     user.Email,
		Name:      user.Name,
		Image:     user.Image,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Timestamp: user.Timestamp,
	}

	q, cancel := u.query(ctx)
	defer cancel()

	res := q.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&record)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &record.ID}, nil
}

func (u *UserPostgreSQL) SetStatus(ctx context.Context, email string, status models.UserStatus) (*models.UpdateResult, error) {
	q, cancel := u.query(ctx)
	defer cancel()

	res := q.Model(&userRecord{}).Where("email = ?", email).Update("status", string(status))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to set user status: %w", res.Error)
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
}

func (u *UserPostgreSQL) Update(ctx context.Context, email string, update repositories.UserUpdate) (*models.UpdateResult, error) {
	fields := map[string]interface{}{"timestamp": update.Timestamp}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.Role != nil {
		fields["role"] = string(*update.Role)
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}

	q, cancel := u.query(ctx)
	defer cancel()

	res := q.Model(&userRecord{}).Where("email = ?", email).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update user: %w", res.Error)
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
}

func (u *UserPostgreSQL) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	q, cancel := u.query(ctx)
	defer cancel()

	res := q.Where("id = ?", id).Delete(&userRecord{})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete user: %w", res.Error)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
