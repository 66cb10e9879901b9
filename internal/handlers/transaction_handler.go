package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/export"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/repository"
	"budgetly/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest is the payload for creating or replacing a transaction.
// Amount is a positive decimal, sent as a string or a number.
type TransactionRequest struct {
	CategoryID  string                 `json:"categoryId" binding:"required,uuid"`
	Type        models.TransactionType `json:"type" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string" example:"12.50"`
	Description string                 `json:"description" binding:"required,max=500"`
	Date        string                 `json:"date" binding:"omitempty,calendar_date" example:"2024-01-31"`
}

func (r TransactionRequest) input() services.TransactionInput {
	in := services.TransactionInput{
		CategoryID:  r.CategoryID,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
	}
	if d := parseDate(r.Date); d != nil {
		in.Date = *d
	}
	return in
}

// TransactionQuery filters ledger listings and exports.
type TransactionQuery struct {
	DateRangeQuery
	Type       string `form:"type" binding:"omitempty,transaction_type"`
	CategoryID string `form:"categoryId" binding:"omitempty,uuid"`
}

func (q TransactionQuery) filter() repository.TransactionFilter {
	var f repository.TransactionFilter
	f.StartDate, f.EndDate = q.bounds()
	if q.Type != "" {
		t := models.TransactionType(q.Type)
		f.Type = &t
	}
	if q.CategoryID != "" {
		id := q.CategoryID
		f.CategoryID = &id
	}
	return f
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. The category type must match the transaction type.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": transaction.Type, "amount": transaction.Amount.String(), "categoryId": transaction.CategoryID})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetUserTransactions handles the retrieval of all transactions for the authenticated user
// @Summary     List transactions
// @Description Paginated ledger, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default 1)"
// @Param       pageSize   query int    false "Items per page (default 20, max 100)"
// @Param       startDate  query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       endDate    query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       type       query string false "income or expense"
// @Param       categoryId query string false "Filter by category ID"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := bindQuery(c, &page); err != nil {
		respondWithError(c, err)
		return
	}

	var q TransactionQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID, page, q.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecentQuery bounds the recent-transactions list.
type RecentQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// GetRecentTransactions returns the newest transactions
// @Summary     Recent transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of rows (default 5, max 50)"
// @Success     200 {array}  models.Transaction "Recent transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/recent [get]
func (h *TransactionHandler) GetRecentTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q RecentQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	txs, err := h.transactionService.GetRecentTransactions(c.Request.Context(), userID, q.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// ExportQuery selects the export format and rows.
type ExportQuery struct {
	TransactionQuery
	Format string `form:"format"`
}

// ExportTransactions streams the filtered ledger as a file
// @Summary     Export transactions
// @Description Download the filtered ledger as CSV or an Excel workbook with totals
// @Tags        transactions
// @Produce     text/csv
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       format     query string false "csv (default) or xlsx"
// @Param       startDate  query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       endDate    query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       type       query string false "income or expense"
// @Param       categoryId query string false "Filter by category ID"
// @Success     200 {file}   file "Export file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ExportQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txs, err := h.transactionService.ExportTransactions(c.Request.Context(), userID, q.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.Filename(exportLabel(q.DateRangeQuery))))
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, txs); err != nil {
		logger.Get().Errorw("failed to write export", "error", err, "user_id", userID, "format", format)
	}
}

func exportLabel(q DateRangeQuery) string {
	start, end := q.StartDate, q.EndDate
	if start == "" {
		start = "start"
	}
	if end == "" {
		end = "now"
	}
	return start + "_" + end
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction replaces an existing transaction
// @Summary     Update transaction
// @Description Replace amount, date, description, type and category under the creation rules
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "New values"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, txID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", txID, c.ClientIP(),
		map[string]interface{}{"type": transaction.Type, "amount": transaction.Amount.String(), "categoryId": transaction.CategoryID})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
