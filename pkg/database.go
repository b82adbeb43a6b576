package pkg

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Alamin4D/battle-server-website/internal/config"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/repositories/memory"
	"github.com/Alamin4D/battle-server-website/internal/repositories/mongodb"
	pgrepo "github.com/Alamin4D/battle-server-website/internal/repositories/postgres"
)

// InitDatabase opens the gorm connection pool for the postgres store
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// NewRedisClient parses REDIS_URL and verifies the server answers
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewRepositoryManager selects the store backend named by STORE_DRIVER
func NewRepositoryManager(cfg *config.Config) (repositories.RepositoryManager, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		return mongodb.NewRepositoryManager(mongodb.RepositoryConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.StoreTimeout,
		}), nil
	case config.StorePostgres:
		db, err := InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return pgrepo.NewRepositoryManager(pgrepo.RepositoryConfig{
			DB:      db,
			Timeout: cfg.StoreTimeout,
		}), nil
	case config.StoreMemory:
		return memory.NewRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
