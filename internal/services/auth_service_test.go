package services

import (
	"errors"
	"testing"
	"time"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"
)

func newTestAuth(t *testing.T) (*testEnv, AuthService) {
	t.Helper()
	env := newInitializedEnv(t)
	return env, NewAuthService(env.store, utils.NewJWTManager("test-secret", time.Minute))
}

func TestLoginAndValidate(t *testing.T) {
	env, auth := newTestAuth(t)

	session, err := auth.Login(env.ctx, models.Credentials{Username: " John ", Password: "john123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.User.Username != "john" || !session.User.IsOwner() || session.AccessToken == "" {
		t.Errorf("Login() = %+v", session)
	}
	if !session.User.HasPermission(models.PermFinancials) {
		t.Error("john is missing the financials permission")
	}

	principal, claims, err := auth.ValidateToken(env.ctx, session.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if principal.Username != "john" || principal.Name != "John Kamau" || claims.ID == "" {
		t.Errorf("ValidateToken() = %+v", principal)
	}

	// Default password for users without a configured one.
	if _, err := auth.Authenticate(env.ctx, "chef", "changeme"); err != nil {
		t.Errorf("Authenticate(chef) error = %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env, auth := newTestAuth(t)
	for _, c := range []models.Credentials{
		{Username: "john", Password: "wrong"},
		{Username: "ghost", Password: "john123"},
	} {
		if _, err := auth.Login(env.ctx, c); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%s) error = %v, want ErrInvalidCredentials", c.Username, err)
		}
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	env, auth := newTestAuth(t)
	session, err := auth.Login(env.ctx, models.Credentials{Username: "mary", Password: "mary123"})
	if err != nil {
		t.Fatal(err)
	}
	_, claims, err := auth.ValidateToken(env.ctx, session.AccessToken)
	if err != nil {
		t.Fatal(err)
	}

	auth.Logout(claims.ID, session.ExpiresAt)
	if _, _, err := auth.ValidateToken(env.ctx, session.AccessToken); !errors.Is(err, ErrSessionRevoked) {
		t.Errorf("ValidateToken() after logout error = %v, want ErrSessionRevoked", err)
	}
}

func TestPasswordChangeTakesEffect(t *testing.T) {
	env, auth := newTestAuth(t)
	if _, err := env.store.UpdateUser(env.ctx, "manager", models.UserUpdate{Password: ptr("s3cret!")}); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Authenticate(env.ctx, "manager", "changeme"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.Authenticate(env.ctx, "manager", "s3cret!"); err != nil {
		t.Errorf("new password error = %v", err)
	}
}
