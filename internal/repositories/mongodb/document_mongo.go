package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// DocumentMongo stores schemaless documents in one collection.
type DocumentMongo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewDocumentMongo(coll *mongo.Collection, timeout time.Duration) *DocumentMongo {
	return &DocumentMongo{coll: coll, timeout: timeout}
}

func (d *DocumentMongo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.timeout)
}

// Insert lets the driver generate the _id; any client-supplied id is dropped.
func (d *DocumentMongo) Insert(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	res, err := d.coll.InsertOne(ctx, bson.M(doc.WithoutID()))
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", d.coll.Name(), err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func (d *DocumentMongo) GetByID(ctx context.Context, id string) (models.Document, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var out bson.M
	if err := d.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s document: %w", d.coll.Name(), err)
	}
	return models.Document(out), nil
}

func (d *DocumentMongo) List(ctx context.Context) ([]models.Document, error) {
	return d.find(ctx, bson.M{})
}

func (d *DocumentMongo) ListByOwnerEmail(ctx context.Context, email string) ([]models.Document, error) {
	return d.find(ctx, ownerEmailFilter(email))
}

func (d *DocumentMongo) Update(ctx context.Context, id string, patch models.Document) (*models.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	res, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(patch.WithoutID())})
	if err != nil {
		return nil, fmt.Errorf("failed to update %s document: %w", d.coll.Name(), err)
	}
	return toUpdateResult(res), nil
}

func (d *DocumentMongo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	res, err := d.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s document: %w", d.coll.Name(), err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (d *DocumentMongo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Document, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	cursor, err := d.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", d.coll.Name(), err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", d.coll.Name(), err)
	}
	return toDocuments(raw), nil
}
