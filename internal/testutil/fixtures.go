package testutil

import (
	"context"
	"testing"

	profilestore "github.com/dmfarley/profilemap/internal/app/store/profiles"
	"github.com/dmfarley/profilemap/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProfile stores a profile through the store (so ids, timestamps, and
// folded fields are assigned the same way production writes are) and returns
// the stored record.
func (f *Fixtures) CreateProfile(ctx context.Context, name, city, state, country string) models.Profile {
	f.t.Helper()

	store := profilestore.New(f.db)
	p, err := store.Create(ctx, models.Profile{
		Name:        name,
		Photo:       "https://example.com/photo.jpg",
		Description: "Test profile for " + name,
		Address: models.Address{
			Street:  "1 Test St",
			City:    city,
			State:   state,
			Country: country,
			Coordinates: models.Coordinates{
				Lat: 40.0,
				Lng: -75.0,
			},
		},
	})
	if err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}
