package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/service"
)

// ExportHandler serves /exports
type ExportHandler struct {
	exportService service.IExportService
}

func NewExportHandler(exportService service.IExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/exports", h.Create)
}

// Create uploads the user's data and returns a short-lived download link
func (h *ExportHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	resp, err := h.exportService.ExportRecords(c.Request.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrExportsDisabled) {
			message(c, http.StatusServiceUnavailable, "Exports are not available")
			return
		}
		internalError(c, "export records", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
