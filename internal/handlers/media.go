package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/services"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

type MediaHandler struct {
	log          *logger.Logger
	mediaService services.MediaService
}

func NewMediaHandler(baseLog *logger.Logger, svc services.MediaService) *MediaHandler {
	return &MediaHandler{
		log:          baseLog.With("handler", "MediaHandler"),
		mediaService: svc,
	}
}

// GET /api/media/landmark/:landmarkId
func (h *MediaHandler) ListByLandmark(c *gin.Context) {
	landmarkID, err := strconv.ParseInt(c.Param("landmarkId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid landmark id"})
		return
	}
	media, err := h.mediaService.ListByLandmark(c.Request.Context(), landmarkID)
	if err != nil {
		h.log.Error("List media failed", "landmark_id", landmarkID, "error", err)
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": media})
}

// POST /api/media/upload/:landmarkId
// Multipart form with fields "images" (0..n) and "video" (0..1).
func (h *MediaHandler) Upload(c *gin.Context) {
	landmarkID, err := strconv.ParseInt(c.Param("landmarkId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid landmark id"})
		return
	}

	var images []*multipart.FileHeader
	var video *multipart.FileHeader
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		images = form.File["images"]
		if videos := form.File["video"]; len(videos) > 0 {
			video = videos[0]
		}
	}

	files, err := h.mediaService.Upload(c.Request.Context(), landmarkID, images, video)
	if err != nil {
		h.log.Error("Upload failed", "landmark_id", landmarkID, "error", err)
		respondMediaError(c, err)
		return
	}
	if files == nil {
		files = []services.UploadedFile{}
	}
	message := fmt.Sprintf("%d file(s) uploaded successfully", len(files))
	// A submitted video missing from the result was an exact duplicate; any
	// other video failure aborts the upload above.
	if video != nil && !containsVideo(files) {
		message += " (duplicate video skipped)"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"files":   files,
	})
}

func containsVideo(files []services.UploadedFile) bool {
	for _, f := range files {
		if f.Type == types.MediaTypeVideo {
			return true
		}
	}
	return false
}

// GET /api/media/serve/:landmarkId/:fileName
func (h *MediaHandler) Serve(c *gin.Context) {
	landmarkID, err := strconv.ParseInt(c.Param("landmarkId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid landmark id"})
		return
	}
	fileName := c.Param("fileName")

	path, contentType, err := h.mediaService.Resolve(landmarkID, fileName)
	if err != nil {
		respondMediaError(c, err)
		return
	}
	c.Header("Content-Type", contentType)
	c.File(path)
}

// DELETE /api/media/:mediaId
func (h *MediaHandler) Delete(c *gin.Context) {
	mediaID, err := strconv.ParseInt(c.Param("mediaId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid media id"})
		return
	}
	if err := h.mediaService.Delete(c.Request.Context(), mediaID); err != nil {
		h.log.Error("Delete media failed", "media_id", mediaID, "error", err)
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Media deleted successfully"})
}

// PUT /api/media/reorder/:landmarkId
func (h *MediaHandler) Reorder(c *gin.Context) {
	landmarkID, err := strconv.ParseInt(c.Param("landmarkId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid landmark id"})
		return
	}
	var payload struct {
		MediaOrder []int64 `json:"mediaOrder"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.MediaOrder == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "mediaOrder must be an array"})
		return
	}
	if err := h.mediaService.Reorder(c.Request.Context(), landmarkID, payload.MediaOrder); err != nil {
		h.log.Error("Reorder media failed", "landmark_id", landmarkID, "error", err)
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Media order updated"})
}
