package tenant

import "errors"

var (
	ErrTenantNotFound    = errors.New("tenant: store not found")
	ErrInvalidSlug       = errors.New("tenant: invalid store slug")
	ErrNoTenantInContext = errors.New("tenant: no store in context")
	ErrInactiveTenant    = errors.New("tenant: store is inactive")
	ErrInvalidSeed       = errors.New("tenant: invalid seed entry")
)
