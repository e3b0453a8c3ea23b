package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmThanapol/feeldiary/backend/internal/apierror"
	"github.com/FilmThanapol/feeldiary/backend/internal/logger"
	"github.com/FilmThanapol/feeldiary/backend/internal/models"
	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/internal/service"
)

// MoodHandler serves the mood entry CRUD endpoints.
type MoodHandler struct {
	entryService service.MoodEntryService
}

// NewMoodHandler creates a new mood entry handler
func NewMoodHandler(entryService service.MoodEntryService) *MoodHandler {
	return &MoodHandler{entryService: entryService}
}

// currentUserID pulls the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return "", false
	}
	return userID.(string), true
}

// writeServiceError maps service and repository errors onto problem responses.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
	case errors.Is(err, repository.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "mood entry", c.Param("date")))
	default:
		logger.FromContext(c.Request.Context()).Error("request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// SaveEntry handles POST /api/v1/moods. Logging a mood for a date that
// already has one updates the existing entry.
func (h *MoodHandler) SaveEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
		return
	}

	entry, err := h.entryService.SaveEntry(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListEntries handles GET /api/v1/moods
func (h *MoodHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if entries == nil {
		entries = []models.MoodEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// GetEntry handles GET /api/v1/moods/:date
func (h *MoodHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PUT /api/v1/moods/:date
func (h *MoodHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), userID, c.Param("date"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/moods/:date
func (h *MoodHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, c.Param("date")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
