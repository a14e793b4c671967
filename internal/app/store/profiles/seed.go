// internal/app/store/profiles/seed.go
package profilestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dmfarley/profilemap/internal/domain/models"
)

// EnsureSeed inserts the built-in seed profiles when nothing has been
// persisted yet. Called once at startup; a store that has records (or had
// them all deleted during this run) is left alone.
func (s *Store) EnsureSeed(ctx context.Context) error {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seeds := SeedProfiles()
	docs := make([]interface{}, 0, len(seeds))
	for _, p := range seeds {
		docs = append(docs, p)
	}
	_, err = s.c.InsertMany(ctx, docs)
	return err
}

// SeedProfiles returns the built-in directory entries used to populate an
// empty store. Creation times are staggered so the insertion-order sort is
// stable.
func SeedProfiles() []models.Profile {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	seeds := []models.Profile{
		{
			ID:          "1",
			Name:        "John Doe",
			Photo:       "https://randomuser.me/api/portraits/men/1.jpg",
			Description: "Software Engineer with 5 years of experience in web development.",
			Address: models.Address{
				Street:      "123 Main St",
				City:        "New York",
				State:       "NY",
				Country:     "USA",
				Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.0060},
			},
			ContactInfo: &models.ContactInfo{
				Email: "john.doe@example.com",
				Phone: "+1 (555) 123-4567",
			},
			Interests: []string{"Programming", "Hiking", "Photography"},
		},
		{
			ID:          "2",
			Name:        "Jane Smith",
			Photo:       "https://randomuser.me/api/portraits/women/1.jpg",
			Description: "UX Designer passionate about creating beautiful and functional interfaces.",
			Address: models.Address{
				Street:      "456 Park Ave",
				City:        "San Francisco",
				State:       "CA",
				Country:     "USA",
				Coordinates: models.Coordinates{Lat: 37.7749, Lng: -122.4194},
			},
			ContactInfo: &models.ContactInfo{
				Email: "jane.smith@example.com",
				Phone: "+1 (555) 987-6543",
			},
			Interests: []string{"Design", "Art", "Travel"},
		},
		{
			ID:          "3",
			Name:        "Mike Johnson",
			Photo:       "https://randomuser.me/api/portraits/men/2.jpg",
			Description: "Data Scientist specializing in machine learning and AI.",
			Address: models.Address{
				Street:      "789 Tech Blvd",
				City:        "Seattle",
				State:       "WA",
				Country:     "USA",
				Coordinates: models.Coordinates{Lat: 47.6062, Lng: -122.3321},
			},
			ContactInfo: &models.ContactInfo{
				Email: "mike.johnson@example.com",
				Phone: "+1 (555) 456-7890",
			},
			Interests: []string{"AI", "Data Science", "Chess"},
		},
	}

	for i := range seeds {
		ts := base.Add(time.Duration(i) * time.Minute)
		seeds[i].CreatedAt = ts
		fold(&seeds[i])
	}
	return seeds
}
