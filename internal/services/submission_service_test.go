package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/models"
)

func TestSubmissionService_ApplicationLifecycle(t *testing.T) {
	publisher := newTestPublisher()
	repo := newMemoryRepo(t)
	svc := NewApplicationService(repo, publisher, testLogger())
	ctx := context.Background()

	mine, err := svc.Create(ctx, models.Document{
		"scholarshipId": "s1",
		"userData":      map[string]interface{}{"email": "a@b.com"},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Document{
		"userData": map[string]interface{}{"email": "other@b.com"},
	})
	require.NoError(t, err)

	byEmail, err := svc.ListByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, mine.InsertedID, byEmail[0].ID())

	del, err := svc.Delete(ctx, mine.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	reviews, err := repo.Review().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, events.ApplicationSubmitted, published[0].Type)
	assert.Equal(t, "a@b.com", published[0].Data["email"])
	assert.Equal(t, "s1", published[0].Data["scholarshipId"])
}

func TestSubmissionService_ReviewUpdate(t *testing.T) {
	repo := newMemoryRepo(t)
	svc := NewReviewService(repo, nil, testLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, models.Document{"rating": 4, "comment": "good"})
	require.NoError(t, err)

	upd, err := svc.Update(ctx, res.InsertedID, models.Document{"rating": 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)

	doc, err := repo.Review().GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, 5, doc["rating"])
	assert.Equal(t, "good", doc["comment"])

	_, err = svc.ListByEmail(ctx, "")
	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestSubmissionService_UpdateRejectsEmptyPatch(t *testing.T) {
	repo := newMemoryRepo(t)
	svc := NewApplicationService(repo, nil, testLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, models.Document{"scholarshipId": "s1"})
	require.NoError(t, err)

	for _, patch := range []models.Document{{}, {models.IDField: res.InsertedID}} {
		_, err = svc.Update(ctx, res.InsertedID, patch)
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	}

	doc, err := repo.Application().GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "s1", doc["scholarshipId"])
}
