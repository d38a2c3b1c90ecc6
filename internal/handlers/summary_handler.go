package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// SummaryHandler serves the global summary card.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetCard returns the global opening balance, income, expense, and current
// balance. All fields are zero, never null, on an empty dataset.
func (h *SummaryHandler) GetCard(c *gin.Context) {
	card, err := h.summaryService.Card()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": card})
}
