package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

type DocumentPostgreSQL struct {
	db      *gorm.DB
	table   string
	timeout time.Duration
}

func NewDocumentPostgreSQL(db *gorm.DB, table string, timeout time.Duration) *DocumentPostgreSQL {
	return &DocumentPostgreSQL{db: db, table: table, timeout: timeout}
}

// query returns a table-scoped session bound to a per-call timeout.
func (d *DocumentPostgreSQL) query(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	return d.db.WithContext(ctx).Table(d.table), cancel
}

func (d *DocumentPostgreSQL) Insert(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	payload, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}

	record := documentRecord{ID: uuid.NewString(), Document: payload}

	q, cancel := d.query(ctx)
	defer cancel()
	if err := q.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", d.table, err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: record.ID}, nil
}

func (d *DocumentPostgreSQL) GetByID(ctx context.Context, id string) (models.Document, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	q, cancel := d.query(ctx)
	defer cancel()

	var record documentRecord
	if err := q.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s document: %w", d.table, err)
	}
	return record.toDocument()
}

func (d *DocumentPostgreSQL) List(ctx context.Context) ([]models.Document, error) {
	q, cancel := d.query(ctx)
	defer cancel()

	var records []documentRecord
	if err := q.Order("created_at ASC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.table, err)
	}
	return toDocuments(records)
}

func (d *DocumentPostgreSQL) ListByOwnerEmail(ctx context.Context, email string) ([]models.Document, error) {
	q, cancel := d.query(ctx)
	defer cancel()

	var records []documentRecord
	err := q.Where(datatypes.JSONQuery("document").Equals(email, "userData", "email")).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by email: %w", d.table, err)
	}
	return toDocuments(records)
}

// Update merges patch into the stored JSONB object, matching $set on
// top-level keys.
func (d *DocumentPostgreSQL) Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	payload, err := encodeDocument(patch)
	if err != nil {
		return nil, err
	}

	q, cancel := d.query(ctx)
	defer cancel()

	res := q.Where("id = ?", id).Updates(map[string]interface{}{
		"document":   gorm.Expr("document || ?::jsonb", string(payload)),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update %s document: %w", d.table, res.Error)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.RowsAffected,
		ModifiedCount: res.RowsAffected,
	}, nil
}

func (d *DocumentPostgreSQL) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	q, cancel := d.query(ctx)
	defer cancel()

	res := q.Where("id = ?", id).Delete(&documentRecord{})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete %s document: %w", d.table, res.Error)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
