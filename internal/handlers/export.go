package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmThanapol/feeldiary/backend/internal/service"
)

// ExportHandler serves data export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV handles GET /api/v1/export/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	csv, err := h.exportService.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="mood-entries.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
