package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnect/profile-api/internal/core/domain"
)

const activityCollection = "activity"

// ActivityRepository persists the append-only activity log.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	Action    string             `bson:"action"`
	CreatedAt time.Time          `bson:"date"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(activity.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	doc := mongoActivity{
		UserID:    uid,
		Action:    activity.Action,
		CreatedAt: activity.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, bson.M{"user": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	entries := []*domain.Activity{}
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, &domain.Activity{
			ID:        ma.ID.Hex(),
			UserID:    ma.UserID.Hex(),
			Action:    ma.Action,
			CreatedAt: ma.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates the user+date index used by ListByUser.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
