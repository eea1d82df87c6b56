package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costengine/internal/errors"
	"costengine/internal/models"
	"costengine/internal/services"
)

// TransactionHandler handles batch transaction processing requests.
type TransactionHandler struct {
	processorService services.ProcessorServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(processorService services.ProcessorServicer) *TransactionHandler {
	return &TransactionHandler{processorService: processorService}
}

// ProcessTransactionsRequest represents the batch processing payload.
// Transaction records are kept raw so each one can be validated
// individually; a malformed record lands in the errored list instead of
// failing the whole request.
type ProcessTransactionsRequest struct {
	ExistingTransactions []json.RawMessage `json:"existing_transactions"`
	NewTransactions      []json.RawMessage `json:"new_transactions" binding:"required"`
}

// ProcessTransactionsResponse represents the batch processing result.
type ProcessTransactionsResponse struct {
	ProcessedTransactions []models.Transaction        `json:"processed_transactions"`
	ErroredTransactions   []models.ErroredTransaction `json:"errored_transactions"`
}

// ProcessTransactions handles batch cost basis processing.
// @Summary     Process transactions
// @Description Merge existing and new transactions, replay them chronologically, and compute gross cost, net cost, and realized gain/loss for the new ones
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body ProcessTransactionsRequest true "Existing and new transactions"
// @Success     200 {object} ProcessTransactionsResponse "Processed and errored transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/process [post]
func (h *TransactionHandler) ProcessTransactions(c *gin.Context) {
	var req ProcessTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := h.processorService.ProcessBatch(req.ExistingTransactions, req.NewTransactions)

	processed := result.Processed
	if processed == nil {
		processed = []models.Transaction{}
	}

	c.JSON(http.StatusOK, ProcessTransactionsResponse{
		ProcessedTransactions: processed,
		ErroredTransactions:   result.Errored,
	})
}
