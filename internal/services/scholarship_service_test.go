package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/cache"
	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

func newCachedScholarshipService(t *testing.T) (ScholarshipService, *events.MockEventPublisher) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher := newTestPublisher()
	return NewScholarshipService(newMemoryRepo(t), cache.NewCacheManager(client), publisher, testLogger(), 0), publisher
}

func TestScholarshipService_SearchAndCount(t *testing.T) {
	svc, _ := newCachedScholarshipService(t)
	ctx := context.Background()

	for _, name := range []string{"Scholarship A", "Merit Award", "Global SCHOLARSHIP", "Sports Grant"} {
		_, err := svc.Create(ctx, models.Document{"name": name})
		require.NoError(t, err)
	}

	count, err := svc.Count(ctx, "schol")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	docs, err := svc.Search(ctx, repositories.NewScholarshipFilters("1", fmt.Sprint(count), "schol"))
	require.NoError(t, err)
	assert.Len(t, docs, int(count))

	empty, err := svc.Search(ctx, repositories.NewScholarshipFilters("9", "8", ""))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestScholarshipService_WritesInvalidateCachedReads(t *testing.T) {
	svc, publisher := newCachedScholarshipService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, models.Document{"name": "Scholarship A", "fee": 10})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	count, err := svc.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	doc, err := svc.Get(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Scholarship A", doc.Name())

	_, err = svc.Update(ctx, res.InsertedID, models.Document{"name": "Renamed"})
	require.NoError(t, err)

	doc, err = svc.Get(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.Name())
	assert.Equal(t, float64(10), doc["fee"])

	_, err = svc.Create(ctx, models.Document{"name": "Second"})
	require.NoError(t, err)

	all, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err = svc.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	del, err := svc.Delete(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	doc, err = svc.Get(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Nil(t, doc)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, events.ScholarshipCreated, published[0].Type)
	assert.Equal(t, "Scholarship A", published[0].Data["name"])
}

func TestScholarshipService_GetInvalidID(t *testing.T) {
	svc := NewScholarshipService(newMemoryRepo(t), nil, nil, testLogger(), 0)

	_, err := svc.Get(context.Background(), "not-an-id")
	assert.True(t, repositories.IsInvalidIDError(err))
}

func TestScholarshipService_SecondInvalidationDropsStaleRead(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cm := cache.NewCacheManager(client)
	svc := NewScholarshipService(newMemoryRepo(t), cm, nil, testLogger(), 50*time.Millisecond)
	ctx := context.Background()

	res, err := svc.Create(ctx, models.Document{"name": "Old"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, res.InsertedID, models.Document{"name": "Renamed"})
	require.NoError(t, err)

	// a read that fetched before the update stores its result afterwards
	stale := models.Document{models.IDField: res.InsertedID, "name": "Old"}
	require.NoError(t, cm.Scholarship.Set(ctx, "id:"+res.InsertedID, stale, cache.ScholarshipCacheConfig.TTL))

	doc, err := svc.Get(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Old", doc.Name())

	assert.Eventually(t, func() bool {
		doc, err := svc.Get(ctx, res.InsertedID)
		return err == nil && doc.Name() == "Renamed"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestScholarshipService_UpdateRejectsEmptyPatch(t *testing.T) {
	svc, _ := newCachedScholarshipService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, models.Document{"name": "Scholarship A"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, res.InsertedID, models.Document{models.IDField: "x"})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	doc, err := svc.Get(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Scholarship A", doc.Name())
}
