package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// cursorData represents the data encoded in a pagination cursor
type cursorData struct {
	Timestamp     time.Time `json:"timestamp"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// encodeCursor creates a cursor string from timestamp and transaction ID
func encodeCursor(timestamp time.Time, transactionID uuid.UUID) string {
	data := cursorData{
		Timestamp:     timestamp,
		TransactionID: transactionID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonData)
}

// decodeCursor decodes a cursor string to timestamp and transaction ID
func decodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("empty cursor")
	}

	jsonData, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	var data cursorData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: %w", err)
	}

	return data.Timestamp, data.TransactionID, nil
}

// CreateTransaction records a new income or expense transaction
// @Summary Create transaction
// @Description Record a new income or expense transaction for the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_006 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(userID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction created successfully",
	})
}

// ListTransactions retrieves transaction history with filtering and pagination
// @Summary List transactions
// @Description Retrieve the authenticated user's transactions. Filter parameters return the full filtered set; without filters the result is cursor-paginated, newest first.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param cursor query string false "Pagination cursor for next page"
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD)"
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Param category query string false "Filter by category name"
// @Param minAmount query string false "Filter by minimum amount"
// @Param maxAmount query string false "Filter by maximum amount"
// @Success 200 {object} dto.ListTransactionsResponse "Transaction history with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters or TRANSACTION_004 - Invalid cursor"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, hasFilters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	pagination, err := parsePaginationParams(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if hasFilters {
		return h.listFiltered(c, userID, filters, pagination.Limit)
	}

	return h.listPage(c, userID, pagination)
}

// listFiltered returns the full filtered set with a total count
func (h *TransactionHandler) listFiltered(c echo.Context, userID uuid.UUID, filters *dto.TransactionFilters, limit int) error {
	transactions, total, err := h.transactionService.List(userID, filters)
	if err != nil {
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid amount filter"))
		}
		return SendSystemError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Pagination: dto.PaginationInfo{
			HasMore: false,
			Limit:   limit,
			Total:   total,
		},
	}

	return c.JSON(http.StatusOK, response)
}

// listPage returns one cursor page, newest first
func (h *TransactionHandler) listPage(c echo.Context, userID uuid.UUID, pagination dto.PaginationParams) error {
	var before *time.Time
	var beforeID *uuid.UUID

	if pagination.Cursor != "" {
		cursorTime, cursorID, err := decodeCursor(pagination.Cursor)
		if err != nil {
			return SendError(c, errors.TransactionInvalidCursor, errors.WithDetails("Invalid cursor"))
		}
		before = &cursorTime
		beforeID = &cursorID
	}

	// Fetch one extra to determine if there's more
	transactions, err := h.transactionService.GetPage(userID, before, beforeID, pagination.Limit+1)
	if err != nil {
		return SendSystemError(c, err)
	}

	var nextCursor string
	hasMore := false

	if len(transactions) > pagination.Limit {
		hasMore = true
		transactions = transactions[:pagination.Limit]
		lastTxn := &transactions[len(transactions)-1]
		nextCursor = encodeCursor(lastTxn.Date, lastTxn.ID)
	}

	response := dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Pagination: dto.PaginationInfo{
			HasMore:    hasMore,
			NextCursor: nextCursor,
			Limit:      pagination.Limit,
		},
	}

	return c.JSON(http.StatusOK, response)
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Description Retrieve one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.transactionService.GetByID(userID, transactionID)
	if err != nil {
		if err == services.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// UpdateTransaction modifies an existing transaction
// @Summary Update transaction
// @Description Update fields of one of the authenticated user's transactions. Omitted fields keep their stored value.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_006 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Update(userID, transactionID, &req)
	if err != nil {
		switch err {
		case services.ErrTransactionNotFound:
			return SendError(c, errors.TransactionNotFound)
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toTransactionResponse(transaction),
		Message: "Transaction updated successfully",
	})
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Delete one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		if err == services.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

// parseTransactionFilters parses filter parameters from the query string.
// The second return value reports whether any filter was supplied.
func parseTransactionFilters(c echo.Context) (*dto.TransactionFilters, bool, error) {
	filters := &dto.TransactionFilters{}
	hasFilters := false

	if startDateStr := c.QueryParam("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return nil, false, fmt.Errorf("invalid startDate format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
		hasFilters = true
	}

	if endDateStr := c.QueryParam("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return nil, false, fmt.Errorf("invalid endDate format, use YYYY-MM-DD")
		}
		// Set to end of day
		endOfDay := endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filters.EndDate = &endOfDay
		hasFilters = true
	}

	if txnType := c.QueryParam("type"); txnType != "" {
		if txnType != models.TransactionTypeIncome && txnType != models.TransactionTypeExpense {
			return nil, false, fmt.Errorf("invalid type, must be 'income' or 'expense'")
		}
		filters.Type = txnType
		hasFilters = true
	}

	if category := c.QueryParam("category"); category != "" {
		filters.Category = category
		hasFilters = true
	}

	if minAmount := c.QueryParam("minAmount"); minAmount != "" {
		filters.MinAmount = minAmount
		hasFilters = true
	}

	if maxAmount := c.QueryParam("maxAmount"); maxAmount != "" {
		filters.MaxAmount = maxAmount
		hasFilters = true
	}

	return filters, hasFilters, nil
}

// parsePaginationParams parses pagination parameters from query string
func parsePaginationParams(c echo.Context) (dto.PaginationParams, error) {
	params := dto.PaginationParams{
		Limit: defaultPageLimit,
	}

	if cursor := c.QueryParam("cursor"); cursor != "" {
		params.Cursor = cursor
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter")
		}

		if limit < 1 {
			return params, fmt.Errorf("limit must be at least 1")
		}

		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		params.Limit = limit
	}

	return params, nil
}

func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          transaction.ID,
		Type:        transaction.Type,
		Amount:      transaction.Amount.String(),
		Description: transaction.Description,
		Category:    transaction.Category,
		Date:        transaction.Date,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, toTransactionResponse(&transactions[i]))
	}
	return result
}
