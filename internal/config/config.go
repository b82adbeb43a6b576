package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

var ErrMissingTokenSecret = errors.New("missing ACCESS_TOKEN_SECRET")

type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	StoreDriver  string
	StoreTimeout time.Duration

	// Mongo
	MongoURI      string
	MongoDatabase string

	// Postgres
	DatabaseURL string

	// Redis, optional
	RedisURL string

	// Tokens
	TokenSecret string
	TokenTTL    time.Duration

	StripeSecretKey string

	// Events, Kafka when brokers are set
	KafkaBrokers      []string
	EventsTopicPrefix string

	CORSAllowedOrigins []string
	RateLimitPerMinute int
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		Port:               getEnv("PORT", "5000"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		StoreTimeout:       getDuration("STORE_TIMEOUT", 10*time.Second),
		MongoDatabase:      getEnv("MONGO_DATABASE", "battleDB"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		TokenSecret:        getEnv("ACCESS_TOKEN_SECRET", ""),
		TokenTTL:           getDuration("TOKEN_TTL", time.Hour),
		StripeSecretKey:    getEnv("STRIPE_SECRET_KEY", ""),
		KafkaBrokers:       splitList(os.Getenv("KAFKA_BROKERS")),
		EventsTopicPrefix:  getEnv("EVENTS_TOPIC_PREFIX", "scholarship"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	cfg.LogLevel = level

	cfg.MongoURI = getEnv("MONGO_URI", "")
	if cfg.MongoURI == "" {
		cfg.MongoURI = buildMongoURI(getEnv("DB_USER", ""), getEnv("DB_PASS", ""), getEnv("DB_HOST", ""))
	}

	if cfg.TokenSecret == "" {
		return nil, ErrMissingTokenSecret
	}

	switch cfg.StoreDriver {
	case StoreMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("missing mongo config: provide MONGO_URI or DB_USER/DB_PASS/DB_HOST")
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("missing DATABASE_URL for postgres store")
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// buildMongoURI composes an Atlas SRV connection string, escaping credentials
func buildMongoURI(user, pass, host string) string {
	if user == "" || host == "" {
		return ""
	}
	u := &url.URL{
		Scheme:   "mongodb+srv",
		Host:     host,
		Path:     "/",
		User:     url.UserPassword(user, pass),
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
