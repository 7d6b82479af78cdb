package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/repos"
	"github.com/vietmaphub/landmark-backend/internal/types"
	"github.com/vietmaphub/landmark-backend/internal/utils"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/x-msvideo":  true,
	"video/quicktime":  true,
	"video/x-matroska": true,
}

var contentTypeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
}

// UploadedFile is one entry of the upload response, with the derived retrieval
// URL for the stored file.
type UploadedFile struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

type MediaService interface {
	ListByLandmark(ctx context.Context, landmarkID int64) ([]*types.LandmarkMedia, error)
	Upload(ctx context.Context, landmarkID int64, images []*multipart.FileHeader, video *multipart.FileHeader) ([]UploadedFile, error)
	// Resolve maps a (landmarkId, fileName) pair to an absolute path under the
	// uploads root plus the content type to serve it with.
	Resolve(landmarkID int64, fileName string) (path string, contentType string, err error)
	Delete(ctx context.Context, mediaID int64) error
	Reorder(ctx context.Context, landmarkID int64, mediaIDs []int64) error
}

type mediaService struct {
	db           *gorm.DB
	log          *logger.Logger
	landmarkRepo repos.LandmarkRepo
	mediaRepo    repos.LandmarkMediaRepo
	uploadsRoot  string
}

func NewMediaService(
	gdb *gorm.DB,
	baseLog *logger.Logger,
	landmarkRepo repos.LandmarkRepo,
	mediaRepo repos.LandmarkMediaRepo,
	uploadsRoot string,
) MediaService {
	return &mediaService{
		db:           gdb,
		log:          baseLog.With("service", "MediaService"),
		landmarkRepo: landmarkRepo,
		mediaRepo:    mediaRepo,
		uploadsRoot:  uploadsRoot,
	}
}

func (s *mediaService) ListByLandmark(ctx context.Context, landmarkID int64) ([]*types.LandmarkMedia, error) {
	return s.mediaRepo.ListByLandmarkID(ctx, nil, landmarkID)
}

// Upload runs the whole batch inside one transaction: the metadata rows are
// all-or-nothing per request, and files written before a failure are removed
// when the transaction rolls back.
func (s *mediaService) Upload(ctx context.Context, landmarkID int64, images []*multipart.FileHeader, video *multipart.FileHeader) ([]UploadedFile, error) {
	var uploaded []UploadedFile
	var written []string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.landmarkRepo.GetByID(ctx, tx, landmarkID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Landmark"}
			}
			return err
		}
		if len(images) == 0 && video == nil {
			return &ValidationError{Reason: "No files uploaded"}
		}

		imageCount, err := s.mediaRepo.CountByType(ctx, tx, landmarkID, types.MediaTypeImage)
		if err != nil {
			return err
		}
		videoCount, err := s.mediaRepo.CountByType(ctx, tx, landmarkID, types.MediaTypeVideo)
		if err != nil {
			return err
		}
		if len(images) > 0 && imageCount+int64(len(images)) > types.MaxImagesPerLandmark {
			return &QuotaExceededError{Reason: fmt.Sprintf(
				"Maximum %d images allowed per marker. Current: %d", types.MaxImagesPerLandmark, imageCount)}
		}
		if video != nil && videoCount >= types.MaxVideosPerLandmark {
			return &QuotaExceededError{Reason: fmt.Sprintf(
				"Maximum %d video allowed per marker", types.MaxVideosPerLandmark)}
		}

		dir := filepath.Join(s.uploadsRoot, "media", fmt.Sprintf("landmark_%d", landmarkID))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		for _, image := range images {
			mime := image.Header.Get("Content-Type")
			if !allowedImageTypes[mime] {
				return &UnsupportedMediaError{Reason: fmt.Sprintf(
					"Invalid image type: %s. Allowed: JPG, PNG, GIF, WebP", mime)}
			}
			result, path, err := s.storeFile(ctx, tx, landmarkID, dir, image, types.MediaTypeImage)
			if err != nil {
				return err
			}
			if path != "" {
				written = append(written, path)
			}
			if result != nil {
				uploaded = append(uploaded, *result)
			}
		}

		if video != nil {
			mime := video.Header.Get("Content-Type")
			if !allowedVideoTypes[mime] {
				return &UnsupportedMediaError{Reason: fmt.Sprintf(
					"Invalid video type: %s. Allowed: MP4, WebM, AVI, MOV, MKV", mime)}
			}
			if video.Size > types.MaxVideoSizeBytes {
				return &PayloadTooLargeError{Reason: fmt.Sprintf(
					"Video too large: %.2fMB. Maximum: 50MB", float64(video.Size)/1024/1024)}
			}
			result, path, err := s.storeFile(ctx, tx, landmarkID, dir, video, types.MediaTypeVideo)
			if err != nil {
				return err
			}
			if path != "" {
				written = append(written, path)
			}
			if result != nil {
				uploaded = append(uploaded, *result)
			}
		}
		return nil
	})
	if err != nil {
		for _, path := range written {
			if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				s.log.Warn("Failed to remove file after aborted upload", "path", path, "error", rmErr)
			}
		}
		return nil, err
	}
	return uploaded, nil
}

// storeFile handles one file: duplicate resolution, disk write, metadata row.
// A silent skip of an exact duplicate returns (nil, "", nil).
func (s *mediaService) storeFile(ctx context.Context, tx *gorm.DB, landmarkID int64, dir string, fh *multipart.FileHeader, mediaType string) (*UploadedFile, string, error) {
	originalName := filepath.Base(fh.Filename)

	exact, err := s.mediaRepo.ExistsExact(ctx, tx, landmarkID, originalName, fh.Size)
	if err != nil {
		return nil, "", err
	}
	if exact {
		s.log.Info("Skipping duplicate file", "landmark_id", landmarkID, "file", originalName, "size", fh.Size)
		return nil, "", nil
	}

	resolvedName := originalName
	conflictCount, err := s.mediaRepo.CountByOriginalName(ctx, tx, landmarkID, originalName)
	if err != nil {
		return nil, "", err
	}
	if conflictCount > 0 {
		resolvedName = suffixedFileName(originalName, conflictCount+1)
		s.log.Info("Renamed file due to name conflict", "landmark_id", landmarkID, "from", originalName, "to", resolvedName)
	}

	storedName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), resolvedName)
	absPath := filepath.Join(dir, storedName)
	if err := saveMultipartFile(fh, absPath); err != nil {
		return nil, "", err
	}

	orderIndex := 0
	if mediaType == types.MediaTypeImage {
		maxOrder, err := s.mediaRepo.MaxImageOrderIndex(ctx, tx, landmarkID)
		if err != nil {
			os.Remove(absPath)
			return nil, "", err
		}
		orderIndex = maxOrder + 1
	}

	media := &types.LandmarkMedia{
		LandmarkID:       landmarkID,
		MediaType:        mediaType,
		FileName:         storedName,
		OriginalFileName: originalName,
		FilePath:         filepath.ToSlash(filepath.Join("media", fmt.Sprintf("landmark_%d", landmarkID), storedName)),
		FileSize:         fh.Size,
		MimeType:         fh.Header.Get("Content-Type"),
		OrderIndex:       orderIndex,
	}
	if err := s.mediaRepo.Create(ctx, tx, media); err != nil {
		// Compensating delete keeps file and metadata in step.
		if rmErr := os.Remove(absPath); rmErr != nil && !os.IsNotExist(rmErr) {
			s.log.Warn("Failed to remove file after insert failure", "path", absPath, "error", rmErr)
		}
		return nil, "", err
	}

	return &UploadedFile{
		ID:       media.ID,
		Type:     mediaType,
		FileName: storedName,
		URL:      fmt.Sprintf("/api/media/serve/%d/%s", landmarkID, storedName),
		Size:     fh.Size,
	}, absPath, nil
}

func (s *mediaService) Resolve(landmarkID int64, fileName string) (string, string, error) {
	path, err := utils.ResolveUnder(s.uploadsRoot, "media", fmt.Sprintf("landmark_%d", landmarkID), fileName)
	if err != nil {
		return "", "", &ForbiddenPathError{}
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", "", &NotFoundError{Resource: "File"}
		}
		return "", "", err
	}
	contentType := contentTypeByExt[strings.ToLower(filepath.Ext(fileName))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return path, contentType, nil
}

func (s *mediaService) Delete(ctx context.Context, mediaID int64) error {
	media, err := s.mediaRepo.GetByID(ctx, nil, mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Media"}
		}
		return err
	}
	if err := s.mediaRepo.DeleteByID(ctx, nil, mediaID); err != nil {
		return err
	}
	// The row is gone; losing the file unlink is acceptable.
	path := filepath.Join(s.uploadsRoot, filepath.FromSlash(media.FilePath))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to remove media file", "path", path, "error", err)
	}
	return nil
}

// Reorder sets each media id's order index to its position in the given
// sequence. Ownership of the ids is not verified.
func (s *mediaService) Reorder(ctx context.Context, landmarkID int64, mediaIDs []int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range mediaIDs {
			if err := s.mediaRepo.UpdateOrderIndex(ctx, tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// suffixedFileName appends a numeric suffix before the extension:
// photo.jpg -> photo_2.jpg.
func suffixedFileName(name string, suffix int64) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%d%s", base, suffix, ext)
}

func saveMultipartFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
