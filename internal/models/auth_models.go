package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Permission tags carried by users.
const (
	PermDashboard  = "dashboard"
	PermFinancials = "financials"
	PermDecisions  = "decisions"
	PermStaff      = "staff"
	PermInventory  = "inventory"
	PermSettings   = "settings"
	PermSuppliers  = "suppliers"
	PermMarketing  = "marketing"
	PermDailyOps   = "daily_ops"
	PermReports    = "reports"
	PermOrders     = "orders"
)

// Principal is the authenticated user as seen by the rest of the system.
type Principal struct {
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Email       string          `json:"email"`
	Ownership   decimal.Decimal `json:"ownership"`
	Investment  decimal.Decimal `json:"investment"`
	Avatar      string          `json:"avatar"`
	Permissions []string        `json:"permissions"`
	LoginTime   time.Time       `json:"loginTime"`
}

// HasPermission reports whether the principal carries any of the tags.
func (p *Principal) HasPermission(tags ...string) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Permissions {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IsOwner reports whether the principal is one of the owners.
func (p *Principal) IsOwner() bool { return p != nil && p.Role == RoleOwner }

// Credentials for login request
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Session is returned on a successful login.
type Session struct {
	User        *Principal `json:"user"`
	AccessToken string     `json:"access_token"`
	ExpiresAt   time.Time  `json:"expires_at"`
}
