package tenant

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tenant is a store as the edge sees it: enough to resolve and brand a
// request, nothing more.
type Tenant struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logo_url,omitempty"`
	CustomDomain string    `json:"custom_domain,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Provider loads stores by slug.
type Provider interface {
	// GetBySlug returns ErrTenantNotFound when no store has the slug.
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, slug string) (*Tenant, error)

// GetBySlug calls f(ctx, slug).
func (f ProviderFunc) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	return f(ctx, slug)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidSlug reports whether s can name a store: a single lowercase DNS
// label of at most 63 characters.
func ValidSlug(s string) bool {
	return len(s) <= 63 && slugPattern.MatchString(s)
}

// NormalizeSlug lowercases and trims s.
func NormalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
