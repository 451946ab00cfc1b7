package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler handles dashboard summary and report HTTP requests
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// GetSummary retrieves the all-time dashboard summary
// @Summary Get dashboard summary
// @Description Retrieve all-time totals, expense breakdown by category, and aggregate savings progress for the authenticated user
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Dashboard summary"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.summaryService.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetReport retrieves a period-scoped financial report
// @Summary Get period report
// @Description Retrieve totals and breakdown for a week, month, or year containing the reference date. Unknown period values fall back to month.
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param period query string false "Reporting period" Enums(week, month, year) default(month)
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ReportResponse "Period report"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Invalid reference date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports [get]
func (h *SummaryHandler) GetReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query := &dto.ReportQuery{
		Period: c.QueryParam("period"),
		Date:   c.QueryParam("date"),
	}

	report, err := h.summaryService.GetReport(c.Request().Context(), userID, query)
	if err != nil {
		if err == services.ErrInvalidDate {
			return SendError(c, errors.ReportInvalidDate, errors.WithDetails("Reference date must use YYYY-MM-DD"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
