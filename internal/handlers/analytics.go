package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FilmThanapol/feeldiary/backend/internal/apierror"
	"github.com/FilmThanapol/feeldiary/backend/internal/service"
	"github.com/FilmThanapol/feeldiary/backend/internal/stats"
)

// AnalyticsHandler serves the derived-statistics endpoints. All numbers are
// computed from stored entries on each request; nothing here is persisted.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Query parameter bounds. The heatmap allocates one cell per window day, so
// the window cap also bounds the response size.
const (
	maxDashboardDays = 365
	maxHeatmapWindow = 730
)

// intQuery parses a positive integer query parameter, falling back to def
// when absent. A present-but-invalid or out-of-bounds value reports an error.
func intQuery(c *gin.Context, name string, def, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > max {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			name+" must be an integer between 1 and "+strconv.Itoa(max),
			"Please check your input and try again"))
		return 0, false
	}
	return v, true
}

// Dashboard handles GET /api/v1/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	days, ok := intQuery(c, "days", 30, maxDashboardDays)
	if !ok {
		return
	}

	resp, err := h.analyticsService.Dashboard(c.Request.Context(), userID, days)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Patterns handles GET /api/v1/analytics/patterns
func (h *AnalyticsHandler) Patterns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rangeKey := c.DefaultQuery("range", "weekday")

	resp, err := h.analyticsService.Patterns(c.Request.Context(), userID, rangeKey)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Heatmap handles GET /api/v1/analytics/heatmap
func (h *AnalyticsHandler) Heatmap(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	window, ok := intQuery(c, "window", stats.DefaultHeatmapWindow, maxHeatmapWindow)
	if !ok {
		return
	}

	resp, err := h.analyticsService.Heatmap(c.Request.Context(), userID, window)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Predictions handles GET /api/v1/analytics/predictions
func (h *AnalyticsHandler) Predictions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	forecast, err := h.analyticsService.Predictions(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
