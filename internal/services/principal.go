package services

import (
	"context"

	"kampala_finance_backend/internal/models"
)

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated user.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// CurrentUser returns the principal stored by WithPrincipal, or nil.
func CurrentUser(ctx context.Context) *models.Principal {
	p, _ := ctx.Value(principalKey{}).(*models.Principal)
	return p
}

// actorName is the display name stamped on generated artifacts.
func actorName(ctx context.Context) string {
	p := CurrentUser(ctx)
	switch {
	case p == nil:
		return "system"
	case p.Name != "":
		return p.Name
	default:
		return p.Username
	}
}
