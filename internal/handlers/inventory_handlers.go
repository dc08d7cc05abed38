package handlers

import (
	"net/http"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// GetInventory handles fetching all inventory items.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "fetch inventory")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetLowStockItems lists the items that need reordering.
func (h *InventoryHandler) GetLowStockItems(c *gin.Context) {
	items, err := h.inventoryService.LowStockItems(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "fetch low stock items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateInventoryItem handles a partial update of an inventory item.
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	var req models.InventoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "update inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}
