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

const postsCollection = "posts"

// PostRepository persists posts in the posts collection. Likes and comments
// are embedded arrays mutated with atomic $push/$pull updates.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

type mongoLike struct {
	UserID primitive.ObjectID `bson:"user"`
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user"`
	Text      string             `bson:"text"`
	Name      string             `bson:"name"`
	Avatar    string             `bson:"avatar,omitempty"`
	CreatedAt time.Time          `bson:"date"`
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	Text      string             `bson:"text"`
	Name      string             `bson:"name"`
	Avatar    string             `bson:"avatar,omitempty"`
	Likes     []mongoLike        `bson:"likes"`
	Comments  []mongoComment     `bson:"comments"`
	CreatedAt time.Time          `bson:"date"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(post.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoPost{
		UserID:    uid,
		Text:      post.Text,
		Name:      post.Name,
		Avatar:    post.Avatar,
		Likes:     []mongoLike{},
		Comments:  []mongoComment{},
		CreatedAt: post.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Likes = []domain.Like{}
	created.Comments = []domain.Comment{}
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// DeleteByUser removes all posts authored by the user (account deletion).
func (r *PostRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	if _, err := r.col.DeleteMany(ctx, bson.M{"user": uid}); err != nil {
		return fmt.Errorf("delete user posts: %w", err)
	}
	return nil
}

// AddLike records one like per user via $addToSet.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.updateByID(ctx, postID, bson.M{
		"$addToSet": bson.M{"likes": mongoLike{UserID: uid}},
	})
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.updateByID(ctx, postID, bson.M{
		"$pull": bson.M{"likes": bson.M{"user": uid}},
	})
}

// AddComment appends the comment with a storage-assigned id.
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment domain.Comment) (*domain.Post, error) {
	uid, err := primitive.ObjectIDFromHex(comment.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoComment{
		ID:        primitive.NewObjectID(),
		UserID:    uid,
		Text:      comment.Text,
		Name:      comment.Name,
		Avatar:    comment.Avatar,
		CreatedAt: comment.CreatedAt,
	}
	return r.updateByID(ctx, postID, bson.M{
		"$push": bson.M{"comments": bson.M{"$each": bson.A{doc}, "$position": 0}},
	})
}

// RemoveComment pulls the comment by id. Pulling an unknown id changes
// nothing.
func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID string) (*domain.Post, error) {
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return r.FindByID(ctx, postID)
	}
	return r.updateByID(ctx, postID, bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": cid}},
	})
}

func (r *PostRepository) updateByID(ctx context.Context, postID string, update bson.M) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mp mongoPost
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return mp.toDomain(), nil
}

func (mp *mongoPost) toDomain() *domain.Post {
	p := &domain.Post{
		ID:        mp.ID.Hex(),
		UserID:    mp.UserID.Hex(),
		Text:      mp.Text,
		Name:      mp.Name,
		Avatar:    mp.Avatar,
		CreatedAt: mp.CreatedAt.UTC(),
		Likes:     make([]domain.Like, 0, len(mp.Likes)),
		Comments:  make([]domain.Comment, 0, len(mp.Comments)),
	}
	for _, l := range mp.Likes {
		p.Likes = append(p.Likes, domain.Like{UserID: l.UserID.Hex()})
	}
	for _, c := range mp.Comments {
		p.Comments = append(p.Comments, domain.Comment{
			ID:        c.ID.Hex(),
			UserID:    c.UserID.Hex(),
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt.UTC(),
		})
	}
	return p
}
