package upload

import (
	"errors"
	"net/http"

	"skillsconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves verification-document endpoints. All routes require
// authentication; ownership is tracked by user_id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /api/v1/documents
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	doc, err := h.service.Store(c.Request.Context(), userID, fileHeader)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": doc})
}

// ListMy handles GET /api/v1/documents
func (h *Handler) ListMy(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	docs, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list documents")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

// GetByID handles GET /api/v1/documents/:id
func (h *Handler) GetByID(c *gin.Context) {
	doc, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"document": doc})
}

// Delete handles DELETE /api/v1/documents/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// RegisterRoutes mounts the document routes on a JWT-guarded group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	docs := r.Group("/documents")
	{
		docs.POST("", h.Upload)
		docs.GET("", h.ListMy)
		docs.GET("/:id", h.GetByID)
		docs.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File is empty")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds maximum allowed size")
	case errors.Is(err, ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only image and PDF files are allowed")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this document")
	case errors.Is(err, ErrDocumentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
