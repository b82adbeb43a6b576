package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCacheHelper_SetGet(t *testing.T) {
	_, client := newTestClient(t)
	helper := NewCacheHelper(client, "scholarship:")
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "id:1", map[string]string{"name": "A"}, time.Minute))

	var got map[string]string
	require.NoError(t, helper.Get(ctx, "id:1", &got))
	assert.Equal(t, "A", got["name"])

	err := helper.Get(ctx, "id:missing", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheHelper_NilClientDegrades(t *testing.T) {
	helper := NewCacheHelper(nil, "x:")
	ctx := context.Background()

	assert.False(t, helper.Available())
	assert.NoError(t, helper.Set(ctx, "k", 1, time.Minute))
	assert.ErrorIs(t, helper.Get(ctx, "k", new(int)), ErrCacheNotAvailable)
	assert.NoError(t, helper.InvalidatePattern(ctx, "*"))
	assert.NoError(t, helper.Delete(ctx, "k"))
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	_, client := newTestClient(t)
	helper := NewCacheHelper(client, "scholarship:")
	ctx := context.Background()

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	var first, second []string
	require.NoError(t, helper.CacheOrExecute(ctx, "list:1", &first, time.Minute, fetch))
	require.NoError(t, helper.CacheOrExecute(ctx, "list:1", &second, time.Minute, fetch))

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestCacheHelper_CacheOrExecutePropagatesFetchError(t *testing.T) {
	helper := NewCacheHelper(nil, "")
	boom := errors.New("boom")

	var dest []string
	err := helper.CacheOrExecute(context.Background(), "k", &dest, time.Minute, func() (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestInvalidateScholarshipCache(t *testing.T) {
	mr, client := newTestClient(t)
	cm := NewCacheManager(client)
	ctx := context.Background()

	require.NoError(t, cm.Scholarship.Set(ctx, "id:abc", 1, time.Minute))
	require.NoError(t, cm.Scholarship.Set(ctx, "id:other", 1, time.Minute))
	require.NoError(t, cm.Scholarship.Set(ctx, "list:1:8:", 1, time.Minute))
	require.NoError(t, cm.Scholarship.Set(ctx, "list:2:8:x", 1, time.Minute))
	require.NoError(t, cm.Scholarship.Set(ctx, "all", 1, time.Minute))
	require.NoError(t, cm.Stats.Set(ctx, "count:", 1, time.Minute))

	InvalidateScholarshipCache(ctx, cm, "abc")

	assert.False(t, mr.Exists("scholarship:id:abc"))
	assert.True(t, mr.Exists("scholarship:id:other"))
	assert.False(t, mr.Exists("scholarship:list:1:8:"))
	assert.False(t, mr.Exists("scholarship:list:2:8:x"))
	assert.False(t, mr.Exists("scholarship:all"))
	assert.False(t, mr.Exists("stats:count:"))
}

func TestCacheManager_HealthCheck(t *testing.T) {
	_, client := newTestClient(t)
	assert.NoError(t, NewCacheManager(client).HealthCheck(context.Background()))
	assert.ErrorIs(t, NewCacheManager(nil).HealthCheck(context.Background()), ErrCacheNotAvailable)
}
