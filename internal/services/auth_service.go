package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/repositories"
	"kampala_finance_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserDirectory resolves usernames to their stored records.
type UserDirectory interface {
	GetUser(ctx context.Context, username string) (*models.UserRecord, error)
}

// --- AuthService Interface ---
type AuthService interface {
	// Authenticate checks a username and password against the user directory.
	Authenticate(ctx context.Context, username, password string) (*models.Principal, error)
	// Login authenticates and issues a session token.
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	// Logout revokes the session identified by the token id until it would have expired.
	Logout(tokenID string, expiresAt time.Time)
	// ValidateToken returns the principal of a live session token.
	ValidateToken(ctx context.Context, token string) (*models.Principal, *utils.Claims, error)
}

// PasswordHasher returns a bcrypt hasher with the given cost.
func PasswordHasher(cost int) repositories.PasswordHasher {
	return func(plain string) (string, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(hashed), nil
	}
}

// --- authService Implementation ---
type authService struct {
	users UserDirectory
	jwt   *utils.JWTManager
	now   func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // token id -> expiry
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users UserDirectory, jwtManager *utils.JWTManager) AuthService {
	return &authService{
		users:   users,
		jwt:     jwtManager,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func principalFor(username string, u *models.UserRecord) *models.Principal {
	return &models.Principal{
		Username:    username,
		Name:        u.Name,
		Role:        u.Role,
		Email:       u.Email,
		Ownership:   u.Ownership,
		Investment:  u.Investment,
		Avatar:      u.Avatar,
		Permissions: append([]string{}, u.Permissions...),
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.Principal, error) {
	name := utils.NormalizeUsername(username)
	user, err := s.users.GetUser(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return principalFor(name, user), nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	principal, err := s.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}

	token, claims, err := s.jwt.GenerateAccessToken(principal.Username, principal.Role, principal.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	principal.LoginTime = claims.IssuedAt.Time

	utils.LogInfo("User logged in", map[string]interface{}{"username": principal.Username, "role": principal.Role})
	return &models.Session{
		User:        principal,
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) Logout(tokenID string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[tokenID] = expiresAt
}

func (s *authService) isRevoked(tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[tokenID]
	return ok
}

// ValidateToken verifies the token and reloads the user so that profile and
// permission changes apply to running sessions.
func (s *authService) ValidateToken(ctx context.Context, token string) (*models.Principal, *utils.Claims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, nil, err
	}
	if s.isRevoked(claims.ID) {
		return nil, nil, ErrSessionRevoked
	}
	user, err := s.users.GetUser(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	principal := principalFor(claims.Username, user)
	if claims.IssuedAt != nil {
		principal.LoginTime = claims.IssuedAt.Time
	}
	return principal, claims, nil
}
