package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnect/profile-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists users in the users collection. Email uniqueness
// is enforced by a unique index, so duplicate registration surfaces as a
// duplicate-key error from a single atomic insert.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Avatar       string             `bson:"avatar,omitempty"`
	CreatedAt    time.Time          `bson:"date"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Avatar:       user.Avatar,
		CreatedAt:    user.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

// Delete removes the user. Deleting an unknown id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index backing the registration
// conflict check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Avatar:       mu.Avatar,
		CreatedAt:    mu.CreatedAt.UTC(),
	}
}
