package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{
		demoDataService: demoDataService,
	}
}

// SeedDemoData generates realistic demo data for the authenticated user
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Request body (all fields optional):
//   - transactionCount: Number of transactions to generate (default: 100, max: 1000)
//   - period: Reporting period to spread transactions over (week, month, year; default: month)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
//   - categories_created: Number of starter categories created (0 if the user already has categories)
//   - goals_created: Number of savings goals created
//
// Error Responses:
//   - 400: Invalid parameters
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	req := dto.SeedDemoDataRequest{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transactionCount := req.TransactionCount
	if transactionCount == 0 {
		transactionCount = 100
	}

	period := req.Period
	if period == "" {
		period = "month"
	}

	result, err := h.demoDataService.SeedDemoData(userID, transactionCount, period)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to seed demo data")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "demo data seeded successfully",
		"transactions_created": result.TransactionsCreated,
		"categories_created":   result.CategoriesCreated,
		"goals_created":        result.GoalsCreated,
	})
}
