package handlers

import (
	"net/http"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// DebtorHandler holds the debtor service.
type DebtorHandler struct {
	debtorService services.DebtorService
}

// NewDebtorHandler creates a new DebtorHandler.
func NewDebtorHandler(ds services.DebtorService) *DebtorHandler {
	return &DebtorHandler{debtorService: ds}
}

// GetDebtors handles fetching all debtors.
func (h *DebtorHandler) GetDebtors(c *gin.Context) {
	debtors, err := h.debtorService.ListDebtors(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "fetch debtors")
		return
	}
	c.JSON(http.StatusOK, debtors)
}

// CreateDebtor handles the creation of a new debtor.
func (h *DebtorHandler) CreateDebtor(c *gin.Context) {
	var req models.NewDebtor
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debtor, err := h.debtorService.AddDebtor(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "create debtor")
		return
	}
	c.JSON(http.StatusCreated, debtor)
}

// UpdateDebtor handles a partial update of a debtor.
func (h *DebtorHandler) UpdateDebtor(c *gin.Context) {
	var req models.DebtorUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debtor, err := h.debtorService.UpdateDebtor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "update debtor")
		return
	}
	c.JSON(http.StatusOK, debtor)
}

// RecordPayment adds a payment to the debtor's amount paid.
func (h *DebtorHandler) RecordPayment(c *gin.Context) {
	var req models.DebtorPayment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debtor, err := h.debtorService.RecordDebtorPayment(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		respondStoreError(c, err, "record payment")
		return
	}
	c.JSON(http.StatusOK, debtor)
}
