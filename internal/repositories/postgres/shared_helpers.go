package postgres

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// documentRecord is the row shape shared by every JSONB collection table.
type documentRecord struct {
	ID        string         `gorm:"primaryKey;size:36"`
	Document  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// validateID accepts only UUIDs, the id format this backend generates.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return nil
}

// likePattern escapes LIKE wildcards so the search term matches literally
// and wraps it for a substring match.
func likePattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(search) + "%"
}

func encodeDocument(doc models.Document) (datatypes.JSON, error) {
	data, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return datatypes.JSON(data), nil
}

func (r *documentRecord) toDocument() (models.Document, error) {
	doc := models.Document{}
	if len(r.Document) > 0 {
		if err := json.Unmarshal(r.Document, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", r.ID, err)
		}
	}
	doc[models.IDField] = r.ID
	return doc, nil
}

func toDocuments(records []documentRecord) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(records))
	for i := range records {
		doc, err := records[i].toDocument()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
