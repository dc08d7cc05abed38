package handlers

import (
	"errors"
	"net/http"

	"kampala_finance_backend/internal/middleware"
	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"
	"kampala_finance_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginUser handles user login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.LogWarn("Failed login attempt", map[string]interface{}{"username": utils.NormalizeUsername(req.Username), "client_ip": c.ClientIP()})
		}
		respondStoreError(c, err, "login")
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetCurrentUser returns the principal of the current session.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	if p == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", ""))
		return
	}
	c.JSON(http.StatusOK, p)
}

// LogoutUser revokes the token used for this request.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil || claims.ID == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", ""))
		return
	}
	h.authService.Logout(claims.ID, claims.ExpiresAt.Time)
	utils.LogInfo("User logged out", map[string]interface{}{"username": claims.Username})
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}
