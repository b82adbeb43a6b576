package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	URI      string
	Database string
	// Timeout bounds every single store call.
	Timeout time.Duration
}

// MongoRepository implements the main Repository interface
type MongoRepository struct {
	client *mongo.Client
	db     *mongo.Database

	user        *UserMongo
	scholarship *ScholarshipMongo
	application *DocumentMongo
	review      *DocumentMongo
}

// NewMongoRepository wires the collection accessors around an already
// connected client.
func NewMongoRepository(client *mongo.Client, database string, timeout time.Duration) *MongoRepository {
	db := client.Database(database)
	return &MongoRepository{
		client:      client,
		db:          db,
		user:        NewUserMongo(db.Collection(repositories.CollectionUsers), timeout),
		scholarship: NewScholarshipMongo(db.Collection(repositories.CollectionScholarships), timeout),
		application: NewDocumentMongo(db.Collection(repositories.CollectionApplications), timeout),
		review:      NewDocumentMongo(db.Collection(repositories.CollectionReviews), timeout),
	}
}

func (r *MongoRepository) User() repositories.UserRepository {
	return r.user
}

func (r *MongoRepository) Scholarship() repositories.ScholarshipRepository {
	return r.scholarship
}

func (r *MongoRepository) Application() repositories.DocumentRepository {
	return r.application
}

func (r *MongoRepository) Review() repositories.DocumentRepository {
	return r.review
}

// Ping runs the admin ping command.
func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index that backs user upserts.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(repositories.CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}
	return nil
}

// RepositoryManager owns the client lifecycle.
type RepositoryManager struct {
	config RepositoryConfig
	repo   *MongoRepository
}

func NewRepositoryManager(config RepositoryConfig) *RepositoryManager {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &RepositoryManager{config: config}
}

// ClientOptions builds the driver options: stable server API v1 and untyped
// nested documents decoded as maps so they encode to plain JSON objects.
func ClientOptions(uri string) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	return options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
}

func (m *RepositoryManager) Initialize(ctx context.Context) error {
	client, err := mongo.Connect(ctx, ClientOptions(m.config.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	repo := NewMongoRepository(client, m.config.Database, m.config.Timeout)

	pingCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}

	m.repo = repo
	return nil
}

func (m *RepositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *RepositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("mongodb repository not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *RepositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close(ctx)
}
