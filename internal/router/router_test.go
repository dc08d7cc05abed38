package router

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kampala_finance_backend/internal/config"
	"kampala_finance_backend/internal/database"
	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/repositories"
	"kampala_finance_backend/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	slot := database.NewMemorySlot(models.DefaultStorageKey)
	repo := repositories.NewDocumentRepository(slot, services.PasswordHasher(bcrypt.MinCost))
	store := services.NewDataStore(repo, services.StoreOptions{
		BcryptCost:      bcrypt.MinCost,
		DefaultPassword: "letmein",
		Rand:            rand.New(rand.NewPCG(3, 4)),
	})
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	cfg := &config.Config{
		Auth:      config.AuthConfig{JWTSecret: "router-test-secret", SessionTTL: time.Minute},
		RateLimit: config.RateLimitConfig{LoginPerMinute: 600, LoginBurst: 100},
	}
	engine := gin.New()
	Setup(engine, store, cfg)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine, username string) string {
	t.Helper()
	w := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", models.Credentials{Username: username, Password: "letmein"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	var session models.Session
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatal(err)
	}
	return session.AccessToken
}

func TestLoginFlow(t *testing.T) {
	engine := newTestServer(t)

	if w := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", models.Credentials{Username: "john", Password: "nope"}); w.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d", w.Code)
	}
	if w := do(t, engine, http.MethodGet, "/api/v1/auth/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous /me status = %d", w.Code)
	}

	token := login(t, engine, "john")
	w := do(t, engine, http.MethodGet, "/api/v1/auth/me", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"username":"john"`) {
		t.Errorf("/me = %d %s", w.Code, w.Body.String())
	}

	if w := do(t, engine, http.MethodPost, "/api/v1/auth/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	if w := do(t, engine, http.MethodGet, "/api/v1/auth/me", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("/me after logout status = %d", w.Code)
	}
}

func TestPermissionGating(t *testing.T) {
	engine := newTestServer(t)
	chef := login(t, engine, "chef")
	manager := login(t, engine, "manager")

	tests := []struct {
		name, method, path, token string
		want                      int
	}{
		{"chef reads inventory", http.MethodGet, "/api/v1/inventory", chef, http.StatusOK},
		{"chef cannot read debtors", http.MethodGet, "/api/v1/debtors", chef, http.StatusForbidden},
		{"chef reads own profile", http.MethodGet, "/api/v1/users/chef", chef, http.StatusOK},
		{"chef cannot read other profiles", http.MethodGet, "/api/v1/users/john", chef, http.StatusForbidden},
		{"manager reads debtors", http.MethodGet, "/api/v1/debtors", manager, http.StatusOK},
		{"manager cannot restore", http.MethodPost, "/api/v1/data/restore", manager, http.StatusForbidden},
		{"manager cannot export", http.MethodGet, "/api/v1/data/export", manager, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, engine, tt.method, tt.path, tt.token, nil); w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestUserCannotRaiseOwnRole(t *testing.T) {
	engine := newTestServer(t)
	chef := login(t, engine, "chef")

	if w := do(t, engine, http.MethodPatch, "/api/v1/users/chef", chef, `{"name":"Chef W."}`); w.Code != http.StatusOK {
		t.Fatalf("rename own profile = %d %s", w.Code, w.Body.String())
	}
	w := do(t, engine, http.MethodPatch, "/api/v1/users/chef", chef, `{"role":"owner","permissions":["settings"]}`)
	if w.Code != http.StatusForbidden || !strings.Contains(w.Body.String(), "FORBIDDEN") {
		t.Fatalf("raise own role = %d %s", w.Code, w.Body.String())
	}

	w = do(t, engine, http.MethodGet, "/api/v1/users/chef", chef, nil)
	var user models.UserRecord
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatal(err)
	}
	if user.Role != models.RoleStaff || user.Name != "Chef W." || user.PasswordHash != "" {
		t.Errorf("profile after rejected update = %+v", user)
	}
}

func TestTransactionsAndDebtors(t *testing.T) {
	engine := newTestServer(t)
	token := login(t, engine, "manager")

	w := do(t, engine, http.MethodPost, "/api/v1/transactions", token, `{"type":"sale","category":"food","amount":12.5,"paymentMethod":"card"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction = %d %s", w.Code, w.Body.String())
	}
	var tx models.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &tx); err != nil {
		t.Fatal(err)
	}
	if tx.RecordedBy != "manager" || !strings.HasPrefix(tx.ID, "TRX-") {
		t.Errorf("created transaction = %+v", tx)
	}

	if w := do(t, engine, http.MethodPost, "/api/v1/transactions", token, `{"type":"gift","paymentMethod":"card"}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid type status = %d", w.Code)
	}

	w = do(t, engine, http.MethodGet, "/api/v1/transactions?category=food&type=sale", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), tx.ID) {
		t.Errorf("filtered list = %d %s", w.Code, w.Body.String())
	}

	w = do(t, engine, http.MethodPatch, "/api/v1/debtors/DBT-002", token, `{"amountPaid": 850}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"paid"`) {
		t.Errorf("pay off debtor = %d %s", w.Code, w.Body.String())
	}
	if w := do(t, engine, http.MethodPatch, "/api/v1/debtors/DBT-404", token, `{"notes": "x"}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown debtor status = %d", w.Code)
	}
}

func TestBackupAndRestore(t *testing.T) {
	engine := newTestServer(t)
	token := login(t, engine, "mary")

	w := do(t, engine, http.MethodGet, "/api/v1/data/backup", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("backup status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "kampala-backup-") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	backup := w.Body.String()

	if w := do(t, engine, http.MethodPost, "/api/v1/data/restore", token, `{"users": {}, "settings": {}}`); w.Code != http.StatusBadRequest {
		t.Errorf("restore without transactions status = %d", w.Code)
	}
	if w := do(t, engine, http.MethodPost, "/api/v1/data/restore", token, backup); w.Code != http.StatusOK {
		t.Errorf("restore status = %d %s", w.Code, w.Body.String())
	}

	w = do(t, engine, http.MethodGet, "/api/v1/reports/daily?notes=ok", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Disposition"), "kampala-report-") {
		t.Errorf("daily report = %d %q", w.Code, w.Header().Get("Content-Disposition"))
	}
}
