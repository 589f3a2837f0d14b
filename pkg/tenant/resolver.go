package tenant

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vendly/edge/pkg/hostrouter"
)

// Resolver extracts a store slug from a request. An empty slug with a nil
// error means the request carries none.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(r *http.Request) (string, error)

// Resolve calls f(r).
func (f ResolverFunc) Resolve(r *http.Request) (string, error) { return f(r) }

// NewRouterResolver reads the tenant hostrouter.Middleware put on the
// request context.
func NewRouterResolver() Resolver {
	return ResolverFunc(func(r *http.Request) (string, error) {
		id, _ := hostrouter.TenantFromContext(r.Context())
		return id, nil
	})
}

// PathResolver reads the slug from a 1-based path segment.
type PathResolver struct {
	Position int
}

// NewPathResolver reads segment position of the path, counting from 1.
func NewPathResolver(position int) *PathResolver {
	return &PathResolver{Position: position}
}

// Resolve returns "" when the path has fewer segments than Position.
func (p *PathResolver) Resolve(r *http.Request) (string, error) {
	if p.Position < 1 {
		return "", fmt.Errorf("path resolver: position %d out of range", p.Position)
	}
	path := strings.Trim(r.URL.Path, "/")
	if path == "" {
		return "", nil
	}
	i := 0
	for seg := range strings.SplitSeq(path, "/") {
		i++
		if i == p.Position {
			return seg, nil
		}
	}
	return "", nil
}

// CompositeResolver returns the first non-empty slug from its resolvers.
type CompositeResolver struct {
	Resolvers []Resolver
}

// NewCompositeResolver tries resolvers in order.
func NewCompositeResolver(resolvers ...Resolver) *CompositeResolver {
	return &CompositeResolver{Resolvers: resolvers}
}

// Resolve returns the first non-empty slug. Errors are returned, joined,
// only if no resolver produced one.
func (c *CompositeResolver) Resolve(r *http.Request) (string, error) {
	var errs []error
	for _, res := range c.Resolvers {
		id, err := res.Resolve(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if id != "" {
			return id, nil
		}
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("composite resolver: %w", errors.Join(errs...))
	}
	return "", nil
}
