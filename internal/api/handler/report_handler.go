package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/api/metrics"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// ReportHandler runs date-range sales reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Run handles POST /v1/reports.
//
// @Summary      Run a sales report over a date range
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      reportRequest  true  "Date range and optional filters"
// @Success      200   {object}  ports.ReportResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/reports [post]
func (h *ReportHandler) Run(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Run(c.Request().Context(), ports.ReportInput{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TherapistID: req.TherapistID,
		CustomerID:  req.CustomerID,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.Inc()
	return c.JSON(http.StatusOK, result)
}
