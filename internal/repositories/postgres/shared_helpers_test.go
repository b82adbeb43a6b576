package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   string
	}{
		{name: "empty matches all", search: "", want: "%%"},
		{name: "plain", search: "schol", want: "%schol%"},
		{name: "wildcards escaped", search: "100%_off", want: `%100\%\_off%`},
		{name: "backslash escaped", search: `a\b`, want: `%a\\b%`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.search))
		})
	}
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validateID(uuid.NewString()))
	assert.ErrorIs(t, validateID("666a1f0c9b1e8a3f4c2d1e0f"), repositories.ErrInvalidID)
}

func TestEncodeDocument_DropsID(t *testing.T) {
	payload, err := encodeDocument(models.Document{"_id": "x", "name": "Scholarship A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Scholarship A"}`, string(payload))
}

func TestDocumentRecord_ToDocument(t *testing.T) {
	record := documentRecord{
		ID:       "3f0c7c52-7d57-4f55-9a59-7d6a5c0ad1a4",
		Document: datatypes.JSON(`{"name":"Scholarship A","userData":{"email":"a@b.c"}}`),
	}

	doc, err := record.toDocument()
	require.NoError(t, err)
	assert.Equal(t, record.ID, doc.ID())
	assert.Equal(t, "Scholarship A", doc.Name())
	assert.Equal(t, "a@b.c", doc.OwnerEmail())
}
