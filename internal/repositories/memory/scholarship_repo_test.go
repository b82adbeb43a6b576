package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

func seedScholarships(t *testing.T, repo *ScholarshipRepo, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := repo.Insert(context.Background(), models.Document{"name": name})
		require.NoError(t, err)
	}
}

func TestScholarshipRepo_SearchIsCaseInsensitive(t *testing.T) {
	repo := NewScholarshipRepo()
	seedScholarships(t, repo, "Scholarship A", "Grant B", "SCHOLAR C")

	got, err := repo.Search(context.Background(), repositories.NewScholarshipFilters("1", "10", "schol"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Scholarship A", got[0].Name())
	assert.Equal(t, "SCHOLAR C", got[1].Name())
}

func TestScholarshipRepo_CountMatchesFullPage(t *testing.T) {
	repo := NewScholarshipRepo()
	for i := 0; i < 23; i++ {
		seedScholarships(t, repo, fmt.Sprintf("Scholarship %02d", i))
	}
	seedScholarships(t, repo, "Unrelated grant")
	_, err := repo.Insert(context.Background(), models.Document{"title": "no name"})
	require.NoError(t, err)

	ctx := context.Background()
	count, err := repo.Count(ctx, "scholarship")
	require.NoError(t, err)
	assert.EqualValues(t, 23, count)

	all, err := repo.Search(ctx, repositories.ScholarshipFilters{Search: "scholarship", Page: 1, Size: int(count)})
	require.NoError(t, err)
	assert.Len(t, all, int(count))
}

func TestScholarshipRepo_PagesConcatenateWithoutDuplicates(t *testing.T) {
	repo := NewScholarshipRepo()
	for i := 0; i < 19; i++ {
		seedScholarships(t, repo, fmt.Sprintf("Scholarship %02d", i))
	}

	ctx := context.Background()
	seen := map[string]bool{}
	for page := 1; ; page++ {
		docs, err := repo.Search(ctx, repositories.ScholarshipFilters{Page: page, Size: 8})
		require.NoError(t, err)
		if len(docs) == 0 {
			break
		}
		for _, doc := range docs {
			assert.False(t, seen[doc.ID()], "duplicate %s", doc.ID())
			seen[doc.ID()] = true
		}
	}
	assert.Len(t, seen, 19)
}

func TestScholarshipRepo_UpdateMergesAndKeepsID(t *testing.T) {
	repo := NewScholarshipRepo()
	ctx := context.Background()

	res, err := repo.Insert(ctx, models.Document{"name": "Old", "amount": 100})
	require.NoError(t, err)

	upd, err := repo.Update(ctx, res.InsertedID, models.Document{"_id": "other", "name": "New"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.MatchedCount)

	doc, err := repo.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, res.InsertedID, doc.ID())
	assert.Equal(t, "New", doc.Name())
	assert.Equal(t, 100, doc["amount"])
}

func TestDocumentRepo_InvalidAndMissingIDs(t *testing.T) {
	repo := NewDocumentRepo()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)

	_, err = repo.GetByID(ctx, "3f0c7c52-7d57-4f55-9a59-7d6a5c0ad1a4")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	del, err := repo.Delete(ctx, "3f0c7c52-7d57-4f55-9a59-7d6a5c0ad1a4")
	require.NoError(t, err)
	assert.Zero(t, del.DeletedCount)
}

func TestDocumentRepo_ListByOwnerEmail(t *testing.T) {
	repo := NewDocumentRepo()
	ctx := context.Background()

	for _, email := range []string{"a@x.io", "b@x.io", "a@x.io"} {
		_, err := repo.Insert(ctx, models.Document{"userData": map[string]interface{}{"email": email}})
		require.NoError(t, err)
	}

	docs, err := repo.ListByOwnerEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}
