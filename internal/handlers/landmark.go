package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/services"
)

type LandmarkHandler struct {
	log             *logger.Logger
	landmarkService services.LandmarkService
}

func NewLandmarkHandler(baseLog *logger.Logger, svc services.LandmarkService) *LandmarkHandler {
	return &LandmarkHandler{
		log:             baseLog.With("handler", "LandmarkHandler"),
		landmarkService: svc,
	}
}

// landmarkPayload is the request body for create and update. Pointers keep
// "field omitted" distinguishable from an explicit empty value.
type landmarkPayload struct {
	Name                    *string  `json:"name"`
	Lat                     *float64 `json:"lat"`
	Lng                     *float64 `json:"lng"`
	City                    *string  `json:"city"`
	Description             *string  `json:"description"`
	HouseNumberOrOfficeName *string  `json:"houseNumberOrOfficeName"`
	Ward                    *string  `json:"ward"`
	District                *string  `json:"district"`
	Province                *string  `json:"province"`
	Country                 *string  `json:"country"`
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GET /api/landmarks
func (h *LandmarkHandler) List(c *gin.Context) {
	landmarks, err := h.landmarkService.List(c.Request.Context())
	if err != nil {
		h.log.Error("List landmarks failed", "error", err)
		respondLandmarkError(c, err)
		return
	}
	c.JSON(http.StatusOK, landmarks)
}

// POST /api/landmarks
func (h *LandmarkHandler) Create(c *gin.Context) {
	var payload landmarkPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	landmark, err := h.landmarkService.Create(c.Request.Context(), services.CreateLandmarkInput{
		Name:                    strOrEmpty(payload.Name),
		Lat:                     payload.Lat,
		Lng:                     payload.Lng,
		City:                    payload.City,
		Description:             payload.Description,
		HouseNumberOrOfficeName: payload.HouseNumberOrOfficeName,
		Ward:                    strOrEmpty(payload.Ward),
		District:                strOrEmpty(payload.District),
		Province:                strOrEmpty(payload.Province),
		Country:                 strOrEmpty(payload.Country),
	})
	if err != nil {
		h.log.Error("Create landmark failed", "error", err)
		respondLandmarkError(c, err)
		return
	}
	c.JSON(http.StatusOK, landmark)
}

// PUT /api/landmarks/:id
func (h *LandmarkHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid landmark id"})
		return
	}
	var payload landmarkPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	landmark, err := h.landmarkService.Update(c.Request.Context(), id, services.UpdateLandmarkInput{
		Name:                    payload.Name,
		Lat:                     payload.Lat,
		Lng:                     payload.Lng,
		City:                    payload.City,
		Description:             payload.Description,
		HouseNumberOrOfficeName: payload.HouseNumberOrOfficeName,
		Ward:                    payload.Ward,
		District:                payload.District,
		Province:                payload.Province,
		Country:                 payload.Country,
	})
	if err != nil {
		h.log.Error("Update landmark failed", "landmark_id", id, "error", err)
		respondLandmarkError(c, err)
		return
	}
	c.JSON(http.StatusOK, landmark)
}

// DELETE /api/landmarks/:id
func (h *LandmarkHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid landmark id"})
		return
	}
	deleted, err := h.landmarkService.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Delete landmark failed", "landmark_id", id, "error", err)
		respondLandmarkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

// POST /api/landmarks/bulk-save
func (h *LandmarkHandler) BulkSave(c *gin.Context) {
	var payload struct {
		Landmarks []landmarkPayload `json:"landmarks"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Landmarks == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "landmarks must be an array"})
		return
	}

	items := make([]services.BulkLandmarkInput, 0, len(payload.Landmarks))
	for _, p := range payload.Landmarks {
		items = append(items, services.BulkLandmarkInput{
			Name:                    strOrEmpty(p.Name),
			Lat:                     p.Lat,
			Lng:                     p.Lng,
			City:                    p.City,
			Description:             p.Description,
			HouseNumberOrOfficeName: p.HouseNumberOrOfficeName,
			Ward:                    strOrEmpty(p.Ward),
			District:                strOrEmpty(p.District),
			Province:                strOrEmpty(p.Province),
			Country:                 strOrEmpty(p.Country),
		})
	}

	inserted, err := h.landmarkService.BulkReplace(c.Request.Context(), items)
	if err != nil {
		h.log.Error("Bulk save failed", "error", err)
		respondLandmarkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"inserted": inserted,
		"message":  fmt.Sprintf("Đã lưu %d địa điểm vào database", inserted),
	})
}
