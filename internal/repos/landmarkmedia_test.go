package repos

import (
	"context"
	"testing"

	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

func seedLandmarkWithMedia(t *testing.T) (LandmarkMediaRepo, int64) {
	t.Helper()
	ctx := context.Background()
	gdb := newTestDB(t)
	log := logger.NewNop()

	landmarkRepo := NewLandmarkRepo(gdb, log)
	lm := newLandmark("Media Target", 1, 2)
	if err := landmarkRepo.Create(ctx, nil, lm); err != nil {
		t.Fatalf("create landmark: %v", err)
	}

	mediaRepo := NewLandmarkMediaRepo(gdb, log)
	rows := []*types.LandmarkMedia{
		{LandmarkID: lm.ID, MediaType: types.MediaTypeImage, FileName: "1_a.jpg", OriginalFileName: "a.jpg", FilePath: "media/a", FileSize: 10, MimeType: "image/jpeg", OrderIndex: 0},
		{LandmarkID: lm.ID, MediaType: types.MediaTypeImage, FileName: "2_b.jpg", OriginalFileName: "b.jpg", FilePath: "media/b", FileSize: 20, MimeType: "image/jpeg", OrderIndex: 1},
		{LandmarkID: lm.ID, MediaType: types.MediaTypeVideo, FileName: "3_v.mp4", OriginalFileName: "v.mp4", FilePath: "media/v", FileSize: 30, MimeType: "video/mp4", OrderIndex: 0},
	}
	for _, row := range rows {
		if err := mediaRepo.Create(ctx, nil, row); err != nil {
			t.Fatalf("create media: %v", err)
		}
	}
	return mediaRepo, lm.ID
}

func TestLandmarkMediaRepoListOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, landmarkID := seedLandmarkWithMedia(t)

	rows, err := repo.ListByLandmarkID(ctx, nil, landmarkID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}
	// media_type DESC puts the video first, then images by order_index.
	if rows[0].MediaType != types.MediaTypeVideo {
		t.Fatalf("expected video first, got %s", rows[0].MediaType)
	}
	if rows[1].OrderIndex != 0 || rows[2].OrderIndex != 1 {
		t.Fatalf("images not ordered by order_index: %d, %d", rows[1].OrderIndex, rows[2].OrderIndex)
	}
}

func TestLandmarkMediaRepoCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, landmarkID := seedLandmarkWithMedia(t)

	images, err := repo.CountByType(ctx, nil, landmarkID, types.MediaTypeImage)
	if err != nil {
		t.Fatalf("count images: %v", err)
	}
	if images != 2 {
		t.Fatalf("unexpected image count: got=%d want=2", images)
	}
	videos, err := repo.CountByType(ctx, nil, landmarkID, types.MediaTypeVideo)
	if err != nil {
		t.Fatalf("count videos: %v", err)
	}
	if videos != 1 {
		t.Fatalf("unexpected video count: got=%d want=1", videos)
	}
}

func TestLandmarkMediaRepoDuplicateLookups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, landmarkID := seedLandmarkWithMedia(t)

	exact, err := repo.ExistsExact(ctx, nil, landmarkID, "a.jpg", 10)
	if err != nil {
		t.Fatalf("exists exact: %v", err)
	}
	if !exact {
		t.Fatal("expected exact match for a.jpg size 10")
	}

	exact, err = repo.ExistsExact(ctx, nil, landmarkID, "a.jpg", 999)
	if err != nil {
		t.Fatalf("exists exact: %v", err)
	}
	if exact {
		t.Fatal("same name with different size must not be an exact match")
	}

	count, err := repo.CountByOriginalName(ctx, nil, landmarkID, "a.jpg")
	if err != nil {
		t.Fatalf("count by original name: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected conflict count: got=%d want=1", count)
	}
}

func TestLandmarkMediaRepoMaxImageOrderIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, landmarkID := seedLandmarkWithMedia(t)

	maxOrder, err := repo.MaxImageOrderIndex(ctx, nil, landmarkID)
	if err != nil {
		t.Fatalf("max order: %v", err)
	}
	if maxOrder != 1 {
		t.Fatalf("unexpected max order: got=%d want=1", maxOrder)
	}

	// A landmark with no images reports -1 so the first image lands at 0.
	maxOrder, err = repo.MaxImageOrderIndex(ctx, nil, landmarkID+100)
	if err != nil {
		t.Fatalf("max order (empty): %v", err)
	}
	if maxOrder != -1 {
		t.Fatalf("unexpected max order for empty landmark: got=%d want=-1", maxOrder)
	}
}
