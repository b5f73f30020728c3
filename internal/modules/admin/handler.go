package admin

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

// GetPendingApplications handles GET /api/v1/admin/applications/pending
func (h *Handler) GetPendingApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	applications, total, err := h.service.GetPendingApplications(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pending applications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": applications,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// ApproveArtisan handles POST /api/v1/admin/artisans/:id/approve
func (h *Handler) ApproveArtisan(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artisan ID")
		return
	}

	adminID := c.GetInt64("user_id")
	artisan, err := h.service.ApproveArtisan(c.Request.Context(), artisanID, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artisan": artisan})
}

// RejectArtisan handles POST /api/v1/admin/artisans/:id/reject
func (h *Handler) RejectArtisan(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artisan ID")
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		return
	}

	artisan, err := h.service.RejectArtisan(c.Request.Context(), artisanID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artisan": artisan})
}

// GetStatistics handles GET /api/v1/admin/stats
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// RegisterRoutes mounts the review-queue and stats routes on an
// already admin-guarded group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/applications/pending", h.GetPendingApplications)
	r.POST("/artisans/:id/approve", h.ApproveArtisan)
	r.POST("/artisans/:id/reject", h.RejectArtisan)
	r.GET("/stats", h.GetStatistics)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotPending):
		response.Error(c, http.StatusConflict, "NOT_PENDING", "Application is not pending review")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artisan not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
