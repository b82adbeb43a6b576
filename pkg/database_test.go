package pkg

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/config"
	"github.com/Alamin4D/battle-server-website/internal/repositories/memory"
	"github.com/Alamin4D/battle-server-website/internal/repositories/mongodb"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.Config{RedisURL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())

	_, err = NewRedisClient(&config.Config{RedisURL: "not-a-url"})
	assert.Error(t, err)
}

func TestNewRepositoryManager_SelectsDriver(t *testing.T) {
	rm, err := NewRepositoryManager(&config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.RepositoryManager{}, rm)

	rm, err = NewRepositoryManager(&config.Config{StoreDriver: config.StoreMongo, MongoURI: "mongodb://localhost:27017"})
	require.NoError(t, err)
	assert.IsType(t, &mongodb.RepositoryManager{}, rm)

	_, err = NewRepositoryManager(&config.Config{StoreDriver: "sqlite"})
	assert.Error(t, err)
}
