package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

// userDocument is the stored shape of a user.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Role      string             `bson:"role,omitempty"`
	Status    string             `bson:"status,omitempty"`
	Timestamp int64              `bson:"timestamp,omitempty"`
}

func (u *userDocument) toModel() *models.User {
	return &models.User{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      models.UserRole(u.Role),
		Status:    models.UserStatus(u.Status),
		Timestamp: u.Timestamp,
	}
}

func fromUserModel(u *models.User) *userDocument {
	return &userDocument{
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      string(u.Role),
		Status:    string(u.Status),
		Timestamp: u.Timestamp,
	}
}

type UserMongo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewUserMongo(coll *mongo.Collection, timeout time.Duration) *UserMongo {
	return &UserMongo{coll: coll, timeout: timeout}
}

func (u *UserMongo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	var doc userDocument
	if err := u.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return doc.toModel(), nil
}

func (u *UserMongo) List(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	cursor, err := u.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]*models.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toModel())
	}
	return users, nil
}

// InsertIfAbsent is a single $setOnInsert upsert, so two concurrent first
// logins cannot both insert. A duplicate key error from the unique email
// index means the other request won and is reported as a plain match.
func (u *UserMongo) InsertIfAbsent(ctx context.Context, user *models.User) (*models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": fromUserModel(user)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return toUpdateResult(res), nil
}

func (u *UserMongo) SetStatus(ctx context.Context, email string, status models.UserStatus) (*models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return nil, fmt.Errorf("failed to set user status: %w", err)
	}
	return toUpdateResult(res), nil
}

func (u *UserMongo) Update(ctx context.Context, email string, update repositories.UserUpdate) (*models.UpdateResult, error) {
	set := bson.M{"timestamp": update.Timestamp}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUpdateResult(res), nil
}

func (u *UserMongo) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
