package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/vietmaphub/landmark-backend/internal/db"
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/repos"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

type testEnv struct {
	db          *gorm.DB
	landmarks   LandmarkService
	media       MediaService
	mediaRepo   repos.LandmarkMediaRepo
	uploadsRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := newTestDB(t)
	log := logger.NewNop()
	uploadsRoot := t.TempDir()

	landmarkRepo := repos.NewLandmarkRepo(gdb, log)
	mediaRepo := repos.NewLandmarkMediaRepo(gdb, log)
	return &testEnv{
		db:          gdb,
		landmarks:   NewLandmarkService(gdb, log, landmarkRepo, mediaRepo, uploadsRoot),
		media:       NewMediaService(gdb, log, landmarkRepo, mediaRepo, uploadsRoot),
		mediaRepo:   mediaRepo,
		uploadsRoot: uploadsRoot,
	}
}

func (e *testEnv) createLandmark(t *testing.T, name string, lat, lng float64) *types.LandmarkWithAddress {
	t.Helper()
	lm, err := e.landmarks.Create(context.Background(), CreateLandmarkInput{
		Name:     name,
		Lat:      &lat,
		Lng:      &lng,
		Ward:     "Ben Nghe",
		District: "District 1",
		Province: "Ho Chi Minh City",
	})
	if err != nil {
		t.Fatalf("create landmark %q: %v", name, err)
	}
	return lm
}

func (e *testEnv) mediaRows(t *testing.T, landmarkID int64) []*types.LandmarkMedia {
	t.Helper()
	rows, err := e.mediaRepo.ListByLandmarkID(context.Background(), nil, landmarkID)
	if err != nil {
		t.Fatalf("list media: %v", err)
	}
	return rows
}

// fileHeader builds a real multipart.FileHeader by writing and re-parsing a
// small form, so Size and the part headers behave as they do in a request.
func fileHeader(t *testing.T, fileName, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["file"][0]
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
