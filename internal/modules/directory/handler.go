package directory

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

// Register handles POST /api/v1/artisans/register (free tier)
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	artisan, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"artisan": artisan})
}

// Apply handles POST /api/v1/artisans/apply (verified application)
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	artisan, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"artisan": artisan})
}

// Import handles POST /api/v1/admin/artisans/import (admin only)
func (h *Handler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	adminID := c.GetInt64("user_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	result, err := h.service.Import(c.Request.Context(), adminID, req.Artisans)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// List handles GET /api/v1/artisans, the unfiltered profile listing.
func (h *Handler) List(c *gin.Context) {
	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 1 {
		offset = (page - 1) * limit
	}

	artisans, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"artisans": artisans,
		"pagination": gin.H{
			"page":  offset/limit + 1,
			"limit": limit,
			"total": total,
		},
	})
}

// GetByID handles GET /api/v1/artisans/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artisan ID")
		return
	}

	artisan, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artisan": artisan})
}

// Update handles PUT /api/v1/artisans/:id (owner or admin)
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artisan ID")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	artisan, err := h.service.UpdateProfile(c.Request.Context(), actorID, c.GetString("role"), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artisan": artisan})
}

// RegisterRoutes registers the public directory routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	artisans := r.Group("/artisans")
	{
		artisans.POST("/register", h.Register)
		artisans.POST("/apply", h.Apply)
		artisans.GET("", h.List)
		artisans.GET("/:id", h.GetByID)
	}
}

// RegisterProtectedRoutes registers routes behind JWT auth.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.PUT("/artisans/:id", h.Update)
}

// RegisterAdminRoutes registers routes behind admin auth.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/artisans/import", h.Import)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailExists):
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "An artisan with this email already exists")
	case errors.Is(err, ErrPhoneExists):
		response.Error(c, http.StatusConflict, "PHONE_EXISTS", "An artisan with this phone number already exists")
	case errors.Is(err, ErrNoServices):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "At least one service is required")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to edit this profile")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artisan not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
