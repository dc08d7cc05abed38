package handlers

import (
	"net/http"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TransactionHandler holds the transaction service.
type TransactionHandler struct {
	transactionService services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ts services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

// GetTransactions lists transactions filtered by the date, type and category query parameters.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var filter models.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondStoreError(c, err, "fetch transactions")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  transactions,
		"total": len(transactions),
	})
}

// CreateTransaction records a new transaction for the current user.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.NewTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tx, err := h.transactionService.AddTransaction(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "record transaction")
		return
	}
	c.JSON(http.StatusCreated, tx)
}
