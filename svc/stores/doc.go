// Package stores backs tenant.Provider and tenant.Cache with real
// infrastructure: Postgres for the store catalogue and Redis for the
// shared lookup cache.
package stores
