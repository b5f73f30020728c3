package ads

import (
	"errors"
	"net/http"
	"strconv"

	"skillsconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/admin/ads
func (h *Handler) Create(c *gin.Context) {
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	ad, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"ad": ad})
}

// Update handles PATCH /api/v1/admin/ads/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad ID")
		return
	}

	var req UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	ad, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ad": ad})
}

// Delete handles DELETE /api/v1/admin/ads/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListAll handles GET /api/v1/admin/ads
func (h *Handler) ListAll(c *gin.Context) {
	ads, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ads": ads})
}

// ListActive handles GET /api/v1/ads?placement=...
func (h *Handler) ListActive(c *gin.Context) {
	ads, err := h.service.ListActive(c.Request.Context(), c.Query("placement"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ads": ads})
}

// RecordImpression handles POST /api/v1/ads/:id/impression
func (h *Handler) RecordImpression(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad ID")
		return
	}

	if err := h.service.RecordImpression(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recorded": true})
}

// RecordClick handles POST /api/v1/ads/:id/click
func (h *Handler) RecordClick(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ad ID")
		return
	}

	if err := h.service.RecordClick(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recorded": true})
}

// RegisterRoutes mounts the public ad routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	adsGroup := r.Group("/ads")
	{
		adsGroup.GET("", h.ListActive)
		adsGroup.POST("/:id/impression", h.RecordImpression)
		adsGroup.POST("/:id/click", h.RecordClick)
	}
}

// RegisterAdminRoutes mounts the management routes on an admin group.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	adsGroup := r.Group("/ads")
	{
		adsGroup.POST("", h.Create)
		adsGroup.GET("", h.ListAll)
		adsGroup.PATCH("/:id", h.Update)
		adsGroup.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDateWindow):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "End date must be after start date")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ad not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
