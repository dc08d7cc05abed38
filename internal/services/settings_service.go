package services

import (
	"context"
	"fmt"
	"strings"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// SettingsService covers restaurant settings, the user directory and the
// monthly financial summaries.
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, update models.SettingsUpdate) (*models.Settings, error)
	GetUser(ctx context.Context, username string) (*models.UserRecord, error)
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) (*models.UserRecord, error)
	ListFinancials(ctx context.Context) ([]models.MonthlySummary, error)
}

var hundred = decimal.NewFromInt(100)

func (s *dataStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	doc, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &models.Settings{}, nil
	}
	settings := *doc.Settings
	return &settings, nil
}

func (s *dataStore) UpdateSettings(ctx context.Context, update models.SettingsUpdate) (*models.Settings, error) {
	if update.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*update.Currency))
		if len(code) != 3 || !utils.KnownCurrency(code) {
			return nil, fmt.Errorf("%w: currency must be a known three letter ISO code", ErrValidation)
		}
		update.Currency = &code
	}
	if update.TaxRate != nil {
		if err := nonNegative("taxRate", *update.TaxRate); err != nil {
			return nil, err
		}
	}
	if update.ServiceCharge != nil {
		if err := nonNegative("serviceCharge", *update.ServiceCharge); err != nil {
			return nil, err
		}
	}

	var updated models.Settings
	err := s.mutate(ctx, func(doc *models.Document) error {
		st := doc.Settings
		if update.RestaurantName != nil {
			st.RestaurantName = *update.RestaurantName
		}
		if update.ThemeColor != nil {
			st.ThemeColor = *update.ThemeColor
		}
		if update.Currency != nil {
			st.Currency = *update.Currency
		}
		if update.TaxRate != nil {
			st.TaxRate = *update.TaxRate
		}
		if update.ServiceCharge != nil {
			st.ServiceCharge = *update.ServiceCharge
		}
		updated = *st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetUser returns the user record including its password hash.
// Unknown usernames and an absent document both yield ErrNotFound.
func (s *dataStore) GetUser(ctx context.Context, username string) (*models.UserRecord, error) {
	doc, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	name := utils.NormalizeUsername(username)
	if doc == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, name)
	}
	u, ok := doc.Users[name]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, name)
	}
	return &u, nil
}

func validateUserUpdate(u models.UserUpdate) error {
	if u.Role != nil && !contains([]string{models.RoleOwner, models.RoleManager, models.RoleStaff}, *u.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, *u.Role)
	}
	if u.Ownership != nil && (u.Ownership.IsNegative() || u.Ownership.GreaterThan(hundred)) {
		return fmt.Errorf("%w: ownership must be between 0 and 100", ErrValidation)
	}
	if u.Investment != nil {
		if err := nonNegative("investment", *u.Investment); err != nil {
			return err
		}
	}
	if u.Password != nil && strings.TrimSpace(*u.Password) == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrValidation)
	}
	return nil
}

// UpdateUser merges update into the named user. A new password is hashed first.
// Role, permissions, ownership and investment may only be changed by a
// principal holding the settings permission, or with no principal at all
// (operator tools).
func (s *dataStore) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (*models.UserRecord, error) {
	if err := validateUserUpdate(update); err != nil {
		return nil, err
	}
	privileged := update.Role != nil || update.Permissions != nil || update.Ownership != nil || update.Investment != nil
	if p := CurrentUser(ctx); privileged && p != nil && !p.HasPermission(models.PermSettings) {
		return nil, fmt.Errorf("%w: changing role, permissions or ownership needs the %s permission", ErrPermissionDenied, models.PermSettings)
	}
	var hash string
	if update.Password != nil {
		h, err := s.hash(*update.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	name := utils.NormalizeUsername(username)
	var updated models.UserRecord
	err := s.mutate(ctx, func(doc *models.Document) error {
		u, ok := doc.Users[name]
		if !ok {
			return fmt.Errorf("%w: user %s", ErrNotFound, name)
		}
		if hash != "" {
			u.PasswordHash = hash
		}
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Role != nil {
			u.Role = *update.Role
		}
		if update.Email != nil {
			u.Email = *update.Email
		}
		if update.Ownership != nil {
			u.Ownership = *update.Ownership
		}
		if update.Investment != nil {
			u.Investment = *update.Investment
		}
		if update.Avatar != nil {
			u.Avatar = *update.Avatar
		}
		if update.Permissions != nil {
			u.Permissions = append([]string{}, (*update.Permissions)...)
		}
		doc.Users[name] = u
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *dataStore) ListFinancials(ctx context.Context) ([]models.MonthlySummary, error) {
	doc, err := s.view(ctx)
	if err != nil || doc == nil {
		return []models.MonthlySummary{}, err
	}
	return doc.Financials, nil
}
