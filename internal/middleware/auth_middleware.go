package middleware

import (
	"errors"
	"net/http"
	"strings"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"
	"kampala_finance_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUsername  = "username"
	ContextPrincipal = "principal"
	ContextClaims    = "claims"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
// The principal is stored in the gin context and in the request context, where
// the store picks it up to stamp recordedBy and generatedBy.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		principal, claims, err := authService.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, services.ErrSessionRevoked) {
				message = "Session has been logged out"
			}
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, message, err.Error()))
			return
		}

		c.Set(ContextUsername, principal.Username)
		c.Set(ContextPrincipal, principal)
		c.Set(ContextClaims, claims)
		c.Request = c.Request.WithContext(services.WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}

// CurrentPrincipal returns the principal set by AuthMiddleware, or nil.
func CurrentPrincipal(c *gin.Context) *models.Principal {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*models.Principal)
	return p
}

// CurrentClaims returns the token claims set by AuthMiddleware, or nil.
func CurrentClaims(c *gin.Context) *utils.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.Claims)
	return claims
}

func forbid(c *gin.Context, message string) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, message, ""))
}

// RequirePermission lets the request through when the principal carries any of the tags.
func RequirePermission(tags ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentPrincipal(c).HasPermission(tags...) {
			forbid(c, "You do not have permission to access this resource. Required one of: "+strings.Join(tags, ", "))
			return
		}
		c.Next()
	}
}

// RequireSelfOrPermission lets users reach their own record named by the path
// parameter, and everyone else only with one of the tags.
func RequireSelfOrPermission(param string, tags ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p != nil && utils.NormalizeUsername(c.Param(param)) == p.Username {
			c.Next()
			return
		}
		if !p.HasPermission(tags...) {
			forbid(c, "You can only access your own profile")
			return
		}
		c.Next()
	}
}

// RoleAuthMiddleware creates a Gin middleware for role-based authorization.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p == nil {
			forbid(c, "User role not found. Ensure AuthMiddleware runs first.")
			return
		}
		for _, r := range allowedRoles {
			if strings.EqualFold(p.Role, r) {
				c.Next()
				return
			}
		}
		forbid(c, "You do not have permission to access this resource. Required roles: "+strings.Join(allowedRoles, ", "))
	}
}
