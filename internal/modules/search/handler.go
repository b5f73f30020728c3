package search

import (
	"net/http"

	"skillsconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /api/v1/search?service=...&location=...&tier=...
// Both service and location keys must be present in the query string;
// empty values are legal and hit the skip-filter semantics.
func (h *Handler) Search(c *gin.Context) {
	service, hasService := c.GetQuery("service")
	location, hasLocation := c.GetQuery("location")
	if !hasService || !hasLocation {
		response.Error(c, http.StatusBadRequest, "MISSING_PARAMETER", "service and location query parameters are required")
		return
	}

	result, err := h.service.Search(c.Request.Context(), Query{
		Service:  service,
		Location: location,
		Tier:     c.Query("tier"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to run search")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"artisans": result.Artisans,
		"tier":     result.Tier,
		"limit":    result.Limit,
		"count":    result.Count,
	})
}

// RegisterRoutes registers the public search route.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.Search)
}
