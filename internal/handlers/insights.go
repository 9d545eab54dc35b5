package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insightsphere/backend/internal/apierror"
	"github.com/insightsphere/backend/internal/models"
	"github.com/insightsphere/backend/internal/service"
)

type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetInsights handles GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	insights, err := h.insightsService.GetInsights(c.Request.Context(), userID.(string))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetStats handles GET /api/v1/insights/stats.
// The body is null when the user has no logs yet; that is the "start
// logging" state, not an error.
func (h *InsightsHandler) GetStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	stats, err := h.insightsService.GetStats(c.Request.Context(), userID.(string))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPatterns handles GET /api/v1/insights/patterns
func (h *InsightsHandler) GetPatterns(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	patterns, err := h.insightsService.GetPatterns(c.Request.Context(), userID.(string))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if patterns == nil {
		patterns = []models.Pattern{}
	}

	c.JSON(http.StatusOK, patterns)
}
