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
	"github.com/devconnect/profile-api/internal/core/ports"
)

const profilesCollection = "profiles"

// ProfileRepository persists profiles in the profiles collection. The
// one-profile-per-user invariant is enforced by a unique index on the owner
// reference plus a single atomic upsert, never a read followed by a write.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(profilesCollection)}
}

type mongoExperience struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Company     string             `bson:"company"`
	Location    string             `bson:"location,omitempty"`
	From        time.Time          `bson:"from"`
	To          time.Time          `bson:"to,omitempty"`
	Current     bool               `bson:"current"`
	Description string             `bson:"description,omitempty"`
}

type mongoEducation struct {
	ID           primitive.ObjectID `bson:"_id"`
	School       string             `bson:"school"`
	Degree       string             `bson:"degree"`
	FieldOfStudy string             `bson:"field_of_study"`
	From         time.Time          `bson:"from"`
	To           time.Time          `bson:"to,omitempty"`
	Current      bool               `bson:"current"`
	Description  string             `bson:"description,omitempty"`
}

type mongoOwner struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Avatar string             `bson:"avatar,omitempty"`
}

type mongoProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"user"`
	Company        string             `bson:"company,omitempty"`
	Website        string             `bson:"website,omitempty"`
	Location       string             `bson:"location,omitempty"`
	Status         string             `bson:"status"`
	Skills         []string           `bson:"skills"`
	Bio            string             `bson:"bio,omitempty"`
	GithubUsername string             `bson:"github_username,omitempty"`
	Experience     []mongoExperience  `bson:"experience"`
	Education      []mongoEducation   `bson:"education"`
	Social         *domain.Social     `bson:"social,omitempty"`
	UpdatedAt      time.Time          `bson:"updated_at"`

	// populated by the $lookup stages only
	Owner *mongoOwner `bson:"owner,omitempty"`
}

// Upsert applies the submitted fields in one FindOneAndUpdate with the
// upsert flag, keyed on the owner id. Absent fields are not written, so an
// update can never clear a previously set field.
func (r *ProfileRepository) Upsert(ctx context.Context, fields ports.ProfileFields) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(fields.OwnerID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	set := bson.M{
		"status":     fields.Status,
		"skills":     fields.Skills,
		"updated_at": time.Now().UTC(),
	}
	if fields.Company != "" {
		set["company"] = fields.Company
	}
	if fields.Website != "" {
		set["website"] = fields.Website
	}
	if fields.Location != "" {
		set["location"] = fields.Location
	}
	if fields.Bio != "" {
		set["bio"] = fields.Bio
	}
	if fields.GithubUsername != "" {
		set["github_username"] = fields.GithubUsername
	}
	if fields.Social != nil {
		set["social"] = fields.Social
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"user":       oid,
			"experience": []mongoExperience{},
			"education":  []mongoEducation{},
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var mp mongoProfile
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"user": oid}, update, opts).Decode(&mp); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return mp.toDomain(), nil
}

// ownerLookup joins the owning user's name and avatar onto each profile.
func ownerLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *ProfileRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	pipeline := append([]bson.D{
		{{Key: "$match", Value: bson.M{"user": oid}}},
	}, ownerLookup()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("find profile: %w", err)
		}
		return nil, domain.ErrProfileNotFound
	}

	var mp mongoProfile
	if err := cur.Decode(&mp); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, ownerLookup())
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	profiles := []*domain.Profile{}
	for cur.Next(ctx) {
		var mp mongoProfile
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		profiles = append(profiles, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// DeleteByOwner removes the owner's profile. Deleting a missing profile is
// a no-op so account deletion stays idempotent.
func (r *ProfileRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"user": oid}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// AddExperience inserts the entry at the head of the experience array. The
// entry id is storage-assigned here.
func (r *ProfileRepository) AddExperience(ctx context.Context, ownerID string, exp domain.Experience) (*domain.Profile, error) {
	doc := mongoExperience{
		ID:          primitive.NewObjectID(),
		Title:       exp.Title,
		Company:     exp.Company,
		Location:    exp.Location,
		From:        exp.From,
		To:          exp.To,
		Current:     exp.Current,
		Description: exp.Description,
	}
	return r.pushHead(ctx, ownerID, "experience", doc)
}

// RemoveExperience pulls the entry by its id. A malformed or unknown id
// leaves the profile unchanged.
func (r *ProfileRepository) RemoveExperience(ctx context.Context, ownerID, expID string) (*domain.Profile, error) {
	return r.pullByID(ctx, ownerID, "experience", expID)
}

// AddEducation mirrors AddExperience over the education array.
func (r *ProfileRepository) AddEducation(ctx context.Context, ownerID string, edu domain.Education) (*domain.Profile, error) {
	doc := mongoEducation{
		ID:           primitive.NewObjectID(),
		School:       edu.School,
		Degree:       edu.Degree,
		FieldOfStudy: edu.FieldOfStudy,
		From:         edu.From,
		To:           edu.To,
		Current:      edu.Current,
		Description:  edu.Description,
	}
	return r.pushHead(ctx, ownerID, "education", doc)
}

func (r *ProfileRepository) RemoveEducation(ctx context.Context, ownerID, eduID string) (*domain.Profile, error) {
	return r.pullByID(ctx, ownerID, "education", eduID)
}

// pushHead prepends doc to the named array field ($position 0 keeps the
// sequence newest-first).
func (r *ProfileRepository) pushHead(ctx context.Context, ownerID, field string, doc any) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	update := bson.M{
		"$push": bson.M{field: bson.M{"$each": bson.A{doc}, "$position": 0}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"user": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("push %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.FindByOwner(ctx, ownerID)
}

// pullByID removes the sub-document with the given id from the named array
// field. $pull on an absent id matches nothing and changes nothing, so
// removal is total over found/not-found.
func (r *ProfileRepository) pullByID(ctx context.Context, ownerID, field, subID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	subOID, err := primitive.ObjectIDFromHex(subID)
	if err != nil {
		// A malformed sub-id cannot match any entry; return the profile as-is.
		return r.FindByOwner(ctx, ownerID)
	}

	update := bson.M{
		"$pull": bson.M{field: bson.M{"_id": subOID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"user": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.FindByOwner(ctx, ownerID)
}

// EnsureIndexes creates the unique owner index backing the
// one-profile-per-user invariant.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (mp *mongoProfile) toDomain() *domain.Profile {
	p := &domain.Profile{
		ID:             mp.ID.Hex(),
		Owner:          domain.Owner{ID: mp.UserID.Hex()},
		Company:        mp.Company,
		Website:        mp.Website,
		Location:       mp.Location,
		Status:         mp.Status,
		Skills:         mp.Skills,
		Bio:            mp.Bio,
		GithubUsername: mp.GithubUsername,
		Social:         mp.Social,
		UpdatedAt:      mp.UpdatedAt.UTC(),
		Experience:     make([]domain.Experience, 0, len(mp.Experience)),
		Education:      make([]domain.Education, 0, len(mp.Education)),
	}
	if mp.Skills == nil {
		p.Skills = []string{}
	}
	if mp.Owner != nil {
		p.Owner.Name = mp.Owner.Name
		p.Owner.Avatar = mp.Owner.Avatar
	}
	for _, e := range mp.Experience {
		p.Experience = append(p.Experience, domain.Experience{
			ID:          e.ID.Hex(),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From.UTC(),
			To:          e.To.UTC(),
			Current:     e.Current,
			Description: e.Description,
		})
	}
	for _, e := range mp.Education {
		p.Education = append(p.Education, domain.Education{
			ID:           e.ID.Hex(),
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From.UTC(),
			To:           e.To.UTC(),
			Current:      e.Current,
			Description:  e.Description,
		})
	}
	return p
}
