// Package repotest holds the behavior every store backend must share.
package repotest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// Run exercises repo against a fresh, empty store.
func Run(t *testing.T, repo repositories.Repository) {
	t.Run("Users", func(t *testing.T) { testUsers(t, repo.User()) })
	t.Run("Scholarships", func(t *testing.T) { testScholarships(t, repo.Scholarship()) })
	t.Run("Applications", func(t *testing.T) { testDocuments(t, repo.Application()) })
	t.Run("Reviews", func(t *testing.T) { testDocuments(t, repo.Review()) })
}

func testUsers(t *testing.T, users repositories.UserRepository) {
	ctx := context.Background()

	_, err := users.GetByEmail(ctx, "a@b.com")
	assert.True(t, repositories.IsNotFoundError(err))

	res, err := users.InsertIfAbsent(ctx, &models.User{Email: "a@b.com", Name: "A", Role: models.RoleGuest, Timestamp: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.UpsertedCount)
	require.NotNil(t, res.UpsertedID)
	upsertedID := *res.UpsertedID

	res, err = users.InsertIfAbsent(ctx, &models.User{Email: "a@b.com", Name: "Other", Role: models.RoleAdmin, Timestamp: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.UpsertedCount)
	assert.EqualValues(t, 1, res.MatchedCount)

	user, err := users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, models.RoleGuest, user.Role)
	assert.Equal(t, upsertedID, user.ID)

	res, err = users.SetStatus(ctx, "a@b.com", models.StatusRequested)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)

	res, err = users.SetStatus(ctx, "nobody@b.com", models.StatusRequested)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)

	role := models.RoleModerator
	name := "Renamed"
	res, err = users.Update(ctx, "a@b.com", repositories.UserUpdate{Name: &name, Role: &role, Timestamp: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)

	user, err = users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, models.RoleModerator, user.Role)
	assert.Equal(t, models.StatusRequested, user.Status)
	assert.EqualValues(t, 5, user.Timestamp)

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = users.DeleteByID(ctx, "not-an-id")
	assert.True(t, repositories.IsInvalidIDError(err))

	del, err := users.DeleteByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.DeletedCount)

	del, err = users.DeleteByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, del.DeletedCount)
}

func testScholarships(t *testing.T, store repositories.ScholarshipRepository) {
	ctx := context.Background()
	testDocuments(t, store)

	before, err := store.Count(ctx, "")
	require.NoError(t, err)

	for i := 0; i < 11; i++ {
		_, err := store.Insert(ctx, models.Document{"name": fmt.Sprintf("Merit Scholarship %02d", i)})
		require.NoError(t, err)
	}
	for _, name := range []string{"Sports Grant", "Arts Award"} {
		_, err := store.Insert(ctx, models.Document{"name": name})
		require.NoError(t, err)
	}

	count, err := store.Count(ctx, "SCHOLARSHIP")
	require.NoError(t, err)
	assert.EqualValues(t, 11, count)

	count, err = store.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, before+13, count)

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		docs, err := store.Search(ctx, repositories.ScholarshipFilters{Search: "scholarship", Page: page, Size: 4})
		require.NoError(t, err)
		for _, doc := range docs {
			assert.Contains(t, doc.Name(), "Scholarship")
			assert.False(t, seen[doc.ID()], "duplicate %s", doc.ID())
			seen[doc.ID()] = true
		}
	}
	assert.Len(t, seen, 11)

	docs, err := store.Search(ctx, repositories.ScholarshipFilters{Search: "scholarship", Page: 4, Size: 4})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func testDocuments(t *testing.T, store repositories.DocumentRepository) {
	ctx := context.Background()

	_, err := store.GetByID(ctx, "not-an-id")
	assert.True(t, repositories.IsInvalidIDError(err))

	ins, err := store.Insert(ctx, models.Document{
		"name":     "Doc",
		"note":     "kept",
		"userData": map[string]interface{}{"email": "owner@b.com"},
	})
	require.NoError(t, err)
	assert.True(t, ins.Acknowledged)
	require.NotEmpty(t, ins.InsertedID)

	_, err = store.Insert(ctx, models.Document{"name": "Other", "userData": map[string]interface{}{"email": "other@b.com"}})
	require.NoError(t, err)

	doc, err := store.GetByID(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, ins.InsertedID, doc.ID())
	assert.Equal(t, "Doc", doc.Name())

	owned, err := store.ListByOwnerEmail(ctx, "owner@b.com")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, ins.InsertedID, owned[0].ID())

	upd, err := store.Update(ctx, ins.InsertedID, models.Document{"name": "Renamed", models.IDField: "ignored"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.MatchedCount)

	doc, err = store.GetByID(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, ins.InsertedID, doc.ID())
	assert.Equal(t, "Renamed", doc.Name())
	assert.Equal(t, "kept", doc["note"])

	del, err := store.Delete(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.DeletedCount)

	del, err = store.Delete(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, del.DeletedCount)

	_, err = store.GetByID(ctx, ins.InsertedID)
	assert.True(t, repositories.IsNotFoundError(err))

	upd, err = store.Update(ctx, ins.InsertedID, models.Document{"name": "Ghost"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, upd.MatchedCount)

	all, err := store.List(ctx)
	require.NoError(t, err)
	for _, d := range all {
		assert.NotEqual(t, ins.InsertedID, d.ID())
	}
}
