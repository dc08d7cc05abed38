package handlers

import (
	"net/http"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SettingsHandler holds the settings service.
type SettingsHandler struct {
	settingsService services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(ss services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: ss}
}

// GetSettings retrieves the restaurant settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the request body into the settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req models.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetFinancials lists the monthly financial summaries.
func (h *SettingsHandler) GetFinancials(c *gin.Context) {
	months, err := h.settingsService.ListFinancials(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "fetch financials")
		return
	}
	c.JSON(http.StatusOK, months)
}

// GetUser returns a user profile. Password hashes never leave the store.
func (h *SettingsHandler) GetUser(c *gin.Context) {
	user, err := h.settingsService.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondStoreError(c, err, "fetch user")
		return
	}
	user.PasswordHash = ""
	c.JSON(http.StatusOK, user)
}

// UpdateUser merges the request body into a user profile. Only users with the
// settings permission may change roles or permissions.
func (h *SettingsHandler) UpdateUser(c *gin.Context) {
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.settingsService.UpdateUser(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		respondStoreError(c, err, "update user")
		return
	}
	user.PasswordHash = ""
	c.JSON(http.StatusOK, user)
}
