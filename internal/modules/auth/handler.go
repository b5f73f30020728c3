package auth

import (
	"errors"
	"net/http"

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

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
	})
}

// GetMe handles GET /api/v1/users/me (protected)
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// RequestVerification handles POST /api/v1/auth/verify/request
func (h *Handler) RequestVerification(c *gin.Context) {
	var req VerifyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	result, err := h.service.RequestEmailVerification(c.Request.Context(), req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"status": result.Status})
}

// ConfirmVerification handles POST /api/v1/auth/verify/confirm
func (h *Handler) ConfirmVerification(c *gin.Context) {
	var req VerifyConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	if err := h.service.ConfirmEmailVerification(c.Request.Context(), req.Email, req.Code); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verified": true})
}

// RegisterRoutes mounts the public auth routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/verify/request", h.RequestVerification)
		authGroup.POST("/verify/confirm", h.ConfirmVerification)
	}
}

// RegisterProtectedRoutes mounts routes behind JWT auth.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/users/me", h.GetMe)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, ErrAccountLocked):
		response.Error(c, http.StatusForbidden, "ACCOUNT_LOCKED", "Account temporarily locked after repeated failed logins")
	case errors.Is(err, ErrEmailNotVerified):
		response.Error(c, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "Email address has not been verified")
	case errors.Is(err, ErrRateLimitExceeded):
		response.Error(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Verification code requested too recently")
	case errors.Is(err, ErrInvalidVerificationCodeFormat):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Verification code must be 6 digits")
	case errors.Is(err, ErrInvalidVerificationCode):
		response.Error(c, http.StatusBadRequest, "INVALID_CODE", "Invalid or expired verification code")
	case errors.Is(err, ErrTooManyAttempts):
		response.Error(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many verification attempts")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
