package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	summaryService services.SummaryServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, summaryService services.SummaryServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, summaryService: summaryService}
}

// AccountRequest represents the request payload for creating or updating an account.
// Amount is the opening balance as a decimal string.
type AccountRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	AccountName string          `json:"account_name" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	CardType    models.CardType `json:"card_type" binding:"required"`
	IsActive    *bool           `json:"is_active"`
	Color       string          `json:"color" binding:"max=32"`
}

func (r *AccountRequest) toModel() *models.Account {
	account := &models.Account{
		Name:        r.Name,
		AccountName: r.AccountName,
		Amount:      r.Amount,
		CardType:    r.CardType,
		IsActive:    true,
		Color:       r.Color,
	}
	if r.IsActive != nil {
		account.IsActive = *r.IsActive
	}
	return account
}

// CreateAccount handles the creation of a new account.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.Create(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts returns all accounts in insertion order.
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.accountService.GetAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccountSummaries returns every account with its derived
// income/expense/balance totals.
func (h *AccountHandler) GetAccountSummaries(c *gin.Context) {
	summaries, err := h.summaryService.AccountSummaries()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// GetAccountByID returns one account.
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount overwrites an account. A missing row maps to 404.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account := req.toModel()
	account.ID = id
	updated, err := h.accountService.Update(account)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !updated {
		respondWithError(c, apperrors.ErrAccountNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount removes an account. A missing row maps to 404.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.accountService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrAccountNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
