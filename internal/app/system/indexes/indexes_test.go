package indexes_test

import (
	"testing"

	"github.com/dmfarley/profilemap/internal/app/system/indexes"
	"github.com/dmfarley/profilemap/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Calling again must be a no-op, not an error.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll (second run) failed: %v", err)
	}

	cur, err := db.Collection("profiles").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("listing indexes failed: %v", err)
	}
	var specs []bson.M
	if err := cur.All(ctx, &specs); err != nil {
		t.Fatalf("decoding indexes failed: %v", err)
	}

	names := make(map[string]bool, len(specs))
	for _, s := range specs {
		if n, ok := s["name"].(string); ok {
			names[n] = true
		}
	}
	for _, want := range []string{"created_at_1", "name_ci_1", "city_ci_1"} {
		if !names[want] {
			t.Errorf("missing index %q (have %v)", want, names)
		}
	}
}
