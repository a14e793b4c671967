// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmfarley/profilemap/internal/domain/models"
)

// ErrNotFound is returned by Update when the target id is not in the store.
var ErrNotFound = errors.New("profile not found")

// Store performs CRUD and search over the profiles collection. Each profile
// is its own document keyed by an opaque UUID string, so concurrent writers
// to different profiles never clobber each other.
type Store struct {
	c       *mongo.Collection
	latency time.Duration
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// WithLatency makes every operation pause first. Dev environments use this
// to exercise the views' loading states; production leaves it at zero.
func (s *Store) WithLatency(d time.Duration) *Store {
	s.latency = d
	return s
}

func (s *Store) pause(ctx context.Context) {
	if s.latency <= 0 {
		return
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// fold refreshes the case-insensitive copies used by search and sorting.
func fold(p *models.Profile) {
	p.NameCI = text.Fold(p.Name)
	p.DescCI = text.Fold(p.Description)
	p.CityCI = text.Fold(p.Address.City)
	p.CountryCI = text.Fold(p.Address.Country)
}

// Create mints a fresh id, stamps timestamps, and inserts the profile.
// The returned record includes the new id.
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	s.pause(ctx)

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = &now
	fold(&p)

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// GetByID returns the profile with the given id. A missing id is not an
// error: it reports found=false.
func (s *Store) GetByID(ctx context.Context, id string) (models.Profile, bool, error) {
	s.pause(ctx)

	var p models.Profile
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, err
	}
	return p, true, nil
}

// ListAll returns every profile in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]models.Profile, error) {
	s.pause(ctx)
	return s.find(ctx, bson.M{})
}

// Update replaces the profile wholesale: every field, including the optional
// ones, is taken from p, so omitted optional fields are cleared rather than
// preserved. The id and creation time are the only surviving fields.
// Returns ErrNotFound (store unchanged) when id is absent.
func (s *Store) Update(ctx context.Context, id string, p models.Profile) (models.Profile, error) {
	s.pause(ctx)

	var existing models.Profile
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		return models.Profile{}, err
	}

	now := time.Now().UTC()
	p.ID = id
	p.CreatedAt = existing.CreatedAt // keeps insertion order stable
	p.UpdatedAt = &now
	fold(&p)

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, p)
	if err != nil {
		return models.Profile{}, err
	}
	if res.MatchedCount == 0 {
		return models.Profile{}, ErrNotFound
	}
	return p, nil
}

// Delete removes the profile if present. Deleting an absent id is a no-op,
// not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.pause(ctx)

	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Search returns profiles whose name, description, or city contains the
// query, case-insensitively, in insertion order. An empty query matches
// everything.
func (s *Store) Search(ctx context.Context, q string) ([]models.Profile, error) {
	s.pause(ctx)

	fq := text.Fold(q)
	if fq == "" {
		return s.find(ctx, bson.M{})
	}

	// The *_ci fields are already folded, so a folded, quoted pattern gives
	// a case-insensitive substring match.
	re := primitive.Regex{Pattern: regexp.QuoteMeta(fq)}
	filter := bson.M{"$or": []bson.M{
		{"name_ci": re},
		{"description_ci": re},
		{"city_ci": re},
	}}
	return s.find(ctx, filter)
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Profile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
