package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"
	"travel-ledger-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReportService is what the HTTP layer needs from the report use case
type ReportService interface {
	BuildReport(ctx context.Context, history *entity.TravelHistory) (*entity.Report, error)
	BuildReportForExport(ctx context.Context, exportID string) (*entity.Report, error)
	SaveHistory(ctx context.Context, history *entity.TravelHistory) error
}

// ReportHandler serves report and history endpoints
type ReportHandler struct {
	service ReportService
	logger  logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportService, logger logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the handler's routes on g
func (h *ReportHandler) Register(g *echo.Group) {
	g.POST("/reports", h.createReport)
	g.GET("/reports/:exportId", h.getReport)
	g.PUT("/histories/:exportId", h.putHistory)
}

// createReport builds a report from a travel history in the request body
func (h *ReportHandler) createReport(c echo.Context) error {
	var history entity.TravelHistory
	if err := c.Bind(&history); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid travel history"})
	}

	report, err := h.service.BuildReport(c.Request().Context(), &history)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build report"})
	}
	return c.JSON(http.StatusOK, report)
}

// getReport rebuilds the report of a stored history
func (h *ReportHandler) getReport(c echo.Context) error {
	exportID := strings.TrimSpace(c.Param("exportId"))
	if exportID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "exportId is required"})
	}

	report, err := h.service.BuildReportForExport(c.Request().Context(), exportID)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "travel history not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build report"})
	}
	return c.JSON(http.StatusOK, report)
}

// putHistory stores a travel history under the export id in the path
func (h *ReportHandler) putHistory(c echo.Context) error {
	exportID := strings.TrimSpace(c.Param("exportId"))
	if exportID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "exportId is required"})
	}

	var history entity.TravelHistory
	if err := c.Bind(&history); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid travel history"})
	}
	if history.ExportID != "" && history.ExportID != exportID {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "exportId does not match path"})
	}
	history.ExportID = exportID

	if err := h.service.SaveHistory(c.Request().Context(), &history); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save travel history"})
	}
	h.logger.Debug("History stored via API", "exportId", exportID)
	return c.JSON(http.StatusOK, echo.Map{"exportId": exportID})
}

// Health reports that the service is up
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
