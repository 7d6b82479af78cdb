package repos

import (
	"context"
	"testing"

	"github.com/vietmaphub/landmark-backend/internal/db"
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

func newLandmark(name string, lat, lng float64) *types.Landmark {
	return &types.Landmark{
		Name:     name,
		Lat:      floatPtr(lat),
		Lng:      floatPtr(lng),
		Ward:     "Ben Nghe",
		District: "District 1",
		Province: "Ho Chi Minh City",
		Country:  types.DefaultCountry,
	}
}

func TestLandmarkRepoCreateDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewLandmarkRepo(newTestDB(t), logger.NewNop())

	if err := repo.Create(ctx, nil, newLandmark("Opera House", 10.776, 106.703)); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Create(ctx, nil, newLandmark("Opera House", 10.776, 106.703))
	if !db.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}

	// Any one differing component of (name, lat, lng) is a distinct landmark.
	for _, lm := range []*types.Landmark{
		newLandmark("Opera House 2", 10.776, 106.703),
		newLandmark("Opera House", 10.777, 106.703),
		newLandmark("Opera House", 10.776, 106.704),
	} {
		if err := repo.Create(ctx, nil, lm); err != nil {
			t.Fatalf("create %q (%v, %v): %v", lm.Name, *lm.Lat, *lm.Lng, err)
		}
	}
}

func TestLandmarkRepoListAllOrdersByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewLandmarkRepo(newTestDB(t), logger.NewNop())

	for i, name := range []string{"C", "A", "B"} {
		if err := repo.Create(ctx, nil, newLandmark(name, float64(i), float64(i))); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	rows, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].ID <= rows[i-1].ID {
			t.Fatalf("rows not ordered by id asc: %d then %d", rows[i-1].ID, rows[i].ID)
		}
	}
}

func TestLandmarkRepoDeleteAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewLandmarkRepo(newTestDB(t), logger.NewNop())

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, nil, newLandmark("L", float64(i), float64(i))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.DeleteAll(ctx, nil); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	rows, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}
