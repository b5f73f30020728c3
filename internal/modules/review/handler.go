package review

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

// Create handles POST /api/v1/artisans/:id/reviews (authenticated)
func (h *Handler) Create(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artisan ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), artisanID, userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

// List handles GET /api/v1/artisans/:id/reviews (public)
func (h *Handler) List(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artisan ID")
		return
	}

	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 1 {
		offset = (page - 1) * limit
	}

	reviews, err := h.service.ListByArtisan(c.Request.Context(), artisanID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// RegisterRoutes mounts the public review listing.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/artisans/:id/reviews", h.List)
}

// RegisterProtectedRoutes mounts review creation behind JWT auth.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/artisans/:id/reviews", h.Create)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artisan not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
