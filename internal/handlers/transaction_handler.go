package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	summaryService     services.SummaryServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, summaryService services.SummaryServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, summaryService: summaryService}
}

// TransactionRequest represents the request payload for creating or updating
// a transaction. Amount is a decimal string; Time is ISO-8601 and defaults
// to now on create when omitted.
type TransactionRequest struct {
	Name        string                 `json:"name" binding:"required,min=1,max=100"`
	Description string                 `json:"description" binding:"max=500"`
	Amount      decimal.Decimal        `json:"amount"`
	Time        string                 `json:"time" binding:"max=40"`
	AccountID   uint                   `json:"account_id" binding:"required"`
	CategoryID  uint                   `json:"category_id" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required"`
}

func (r *TransactionRequest) toModel() *models.Transaction {
	return &models.Transaction{
		Name:        r.Name,
		Description: r.Description,
		Amount:      r.Amount,
		Time:        r.Time,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Type:        r.Type,
	}
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.Create(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions returns one page of joined transaction details, newest
// first, optionally filtered to one account via ?account_id=. The caller
// drives paging with ?page= and ?page_size=; a full page means more data may
// exist.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	accountID, err := parseAccountIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetPage(page, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetGroupedByDate returns transactions partitioned by calendar date with a
// signed per-date subtotal, dates descending.
func (h *TransactionHandler) GetGroupedByDate(c *gin.Context) {
	accountID, err := parseAccountIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.summaryService.GroupedByDate(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetTransactionByID returns one raw transaction row.
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction overwrites a transaction. A missing row maps to 404.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction := req.toModel()
	transaction.ID = id
	updated, err := h.transactionService.Update(transaction)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !updated {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction. A missing row maps to 404.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.transactionService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
