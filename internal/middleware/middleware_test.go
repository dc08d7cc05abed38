package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kampala_finance_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withPrincipal(p *models.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p != nil {
			c.Set(ContextPrincipal, p)
		}
		c.Next()
	}
}

func serve(t *testing.T, p *models.Principal, path, target string, guard gin.HandlerFunc) int {
	t.Helper()
	r := gin.New()
	r.GET(path, withPrincipal(p), guard, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w.Code
}

func TestRequirePermission(t *testing.T) {
	chef := &models.Principal{Username: "chef", Role: models.RoleStaff, Permissions: []string{models.PermInventory, models.PermReports}}
	tests := []struct {
		name string
		p    *models.Principal
		tags []string
		want int
	}{
		{"has one of the tags", chef, []string{models.PermDashboard, models.PermReports}, http.StatusNoContent},
		{"lacks the tag", chef, []string{models.PermFinancials}, http.StatusForbidden},
		{"anonymous", nil, []string{models.PermInventory}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serve(t, tt.p, "/x", "/x", RequirePermission(tt.tags...)); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireSelfOrPermission(t *testing.T) {
	chef := &models.Principal{Username: "chef", Permissions: []string{models.PermInventory}}
	owner := &models.Principal{Username: "john", Permissions: []string{models.PermSettings}}
	guard := RequireSelfOrPermission("username", models.PermSettings)

	if got := serve(t, chef, "/users/:username", "/users/Chef", guard); got != http.StatusNoContent {
		t.Errorf("own profile status = %d", got)
	}
	if got := serve(t, chef, "/users/:username", "/users/john", guard); got != http.StatusForbidden {
		t.Errorf("other profile status = %d", got)
	}
	if got := serve(t, owner, "/users/:username", "/users/chef", guard); got != http.StatusNoContent {
		t.Errorf("settings permission status = %d", got)
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	manager := &models.Principal{Username: "manager", Role: models.RoleManager}
	if got := serve(t, manager, "/x", "/x", RoleAuthMiddleware(models.RoleOwner)); got != http.StatusForbidden {
		t.Errorf("manager status = %d, want 403", got)
	}
	if got := serve(t, manager, "/x", "/x", RoleAuthMiddleware(models.RoleOwner, models.RoleManager)); got != http.StatusNoContent {
		t.Errorf("manager status = %d, want 204", got)
	}
}

func TestIPRateLimiter(t *testing.T) {
	rl := NewIPRateLimiter(1, 2)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	// Another client has its own budget.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", w.Code)
	}
}
