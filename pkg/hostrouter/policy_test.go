package hostrouter_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendly/edge/pkg/hostrouter"
)

func newPolicy(t *testing.T) *hostrouter.Policy {
	t.Helper()
	p, err := hostrouter.NewPolicy(hostrouter.DefaultConfig("example.com"))
	require.NoError(t, err)
	return p
}

var samplePaths = []string{"/", "/products", "/products/42", "/anything", "/admin", "/api/orders", "/acme/x"}

func TestNewPolicy(t *testing.T) {
	t.Parallel()

	t.Run("normalises the root domain", func(t *testing.T) {
		t.Parallel()
		p, err := hostrouter.NewPolicy(hostrouter.DefaultConfig("  Example.COM "))
		require.NoError(t, err)
		assert.Equal(t, "example.com", p.RootDomain())
	})

	t.Run("rejects malformed root domains", func(t *testing.T) {
		t.Parallel()
		for _, root := range []string{"", ".example.com", "example.com.", "example.com:443", "https://example.com", "exa mple.com"} {
			_, err := hostrouter.NewPolicy(hostrouter.DefaultConfig(root))
			assert.ErrorIs(t, err, hostrouter.ErrInvalidRootDomain, "root %q", root)
		}
	})

	t.Run("rejects relative prefixes", func(t *testing.T) {
		t.Parallel()
		cfg := hostrouter.DefaultConfig("example.com")
		cfg.AdminPrefixes = []string{"admin"}
		_, err := hostrouter.NewPolicy(cfg)
		assert.ErrorIs(t, err, hostrouter.ErrInvalidPrefix)
	})

	t.Run("rejects non-redirect status codes", func(t *testing.T) {
		t.Parallel()
		cfg := hostrouter.DefaultConfig("example.com")
		cfg.RedirectCode = http.StatusOK
		_, err := hostrouter.NewPolicy(cfg)
		assert.ErrorIs(t, err, hostrouter.ErrInvalidRedirectCode)
	})

	t.Run("rejects malformed dev domain", func(t *testing.T) {
		t.Parallel()
		cfg := hostrouter.DefaultConfig("example.com")
		cfg.DevDomain = ".localhost"
		_, err := hostrouter.NewPolicy(cfg)
		assert.ErrorIs(t, err, hostrouter.ErrInvalidDevDomain)
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()
	p := newPolicy(t)

	t.Run("root domain and www alias are platform traffic", func(t *testing.T) {
		t.Parallel()
		for _, host := range []string{"example.com", "www.example.com", "EXAMPLE.com", "example.com:8443", "localhost", "www.localhost:3000"} {
			c := p.Classify(host)
			assert.Equal(t, hostrouter.ScopeRoot, c.Scope, "host %q", host)
			assert.Empty(t, c.Tenant, "host %q", host)
		}
	})

	t.Run("subdomains become tenants", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"acme", "shop-42", "a", "x1"} {
			c := p.Classify(id + ".example.com")
			assert.Equal(t, hostrouter.ScopeTenant, c.Scope, "id %q", id)
			assert.Equal(t, id, c.Tenant)
		}
	})

	t.Run("reserved names are never tenants", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"www", "admin", "api", "ai", "support", "docs"} {
			for _, domain := range []string{"example.com", "localhost"} {
				c := p.Classify(name + "." + domain)
				assert.Equal(t, hostrouter.ScopeRoot, c.Scope, "%s.%s", name, domain)
			}
		}
	})

	t.Run("localhost mirrors the root domain in development", func(t *testing.T) {
		t.Parallel()
		c := p.Classify("acme.localhost:3000")
		assert.Equal(t, hostrouter.ScopeTenant, c.Scope)
		assert.Equal(t, "acme", c.Tenant)
	})

	t.Run("dev rule can be disabled", func(t *testing.T) {
		t.Parallel()
		cfg := hostrouter.DefaultConfig("example.com")
		cfg.DevDomain = ""
		noDev, err := hostrouter.NewPolicy(cfg)
		require.NoError(t, err)
		assert.Equal(t, hostrouter.ScopeRoot, noDev.Classify("acme.localhost").Scope)
	})

	t.Run("unknown and malformed hosts fail open to the platform", func(t *testing.T) {
		t.Parallel()
		for _, host := range []string{
			"",
			"   ",
			"evil.com",
			"acme.example.com.evil.com",
			"notexample.com",
			"a.b.example.com",
			".example.com",
			"-acme.example.com",
			"acme_shop.example.com",
			"10.0.0.1",
			"[::1]:8080",
		} {
			c := p.Classify(host)
			assert.Equal(t, hostrouter.ScopeRoot, c.Scope, "host %q", host)
			assert.Empty(t, c.Tenant, "host %q", host)
		}
	})
}

func TestDecide(t *testing.T) {
	t.Parallel()
	p := newPolicy(t)

	t.Run("platform hosts pass through for any path", func(t *testing.T) {
		t.Parallel()
		for _, host := range []string{"example.com", "www.example.com", "admin.example.com", "api.example.com", "unknown.org"} {
			for _, path := range samplePaths {
				d := p.Decide(host, path)
				assert.Equal(t, hostrouter.ActionPass, d.Action, "%s%s", host, path)
				assert.Equal(t, path, d.Path)
			}
		}
	})

	t.Run("tenant paths are rewritten under the slug", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			host, path, want string
		}{
			{"acme.example.com", "/products", "/acme/products"},
			{"acme.example.com", "/", "/acme"},
			{"acme.example.com", "/products/", "/acme/products/"},
			{"acme.example.com", "/acmex", "/acme/acmex"},
			{"acme.localhost:3000", "/cart", "/acme/cart"},
			{"Acme.Example.com", "/cart", "/acme/cart"},
			{"acme.example.com", "/administrator", "/acme/administrator"},
		}
		for _, tt := range tests {
			d := p.Decide(tt.host, tt.path)
			assert.Equal(t, hostrouter.ActionRewrite, d.Action, "%s%s", tt.host, tt.path)
			assert.Equal(t, hostrouter.ScopeTenant, d.Scope)
			assert.Equal(t, tt.want, d.Path, "%s%s", tt.host, tt.path)
		}
	})

	t.Run("rewriting is idempotent", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"/", "/products", "/products/42", "/checkout/"} {
			first := p.Decide("acme.example.com", path)
			require.Equal(t, hostrouter.ActionRewrite, first.Action)

			second := p.Decide("acme.example.com", first.Path)
			assert.Equal(t, hostrouter.ActionPass, second.Action, "path %q", first.Path)
			assert.Equal(t, first.Path, second.Path, "no double prefix for %q", path)
		}
	})

	t.Run("admin paths on tenant hosts redirect to the tenant root", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"/admin", "/admin/", "/admin/settings", "/acme/admin", "/acme/admin/users"} {
			d := p.Decide("acme.example.com", path)
			assert.Equal(t, hostrouter.ActionRedirect, d.Action, "path %q", path)
			assert.Equal(t, "/", d.Location)
		}
	})

	t.Run("admin API paths on tenant hosts are forbidden", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"/api/admin", "/api/admin/tenants", "/acme/api/admin"} {
			d := p.Decide("acme.example.com", path)
			assert.Equal(t, hostrouter.ActionForbid, d.Action, "path %q", path)
		}
	})

	t.Run("static assets are not evaluated", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"/_next/static/chunk.js", "/favicon.ico", "/assets/logo.png"} {
			d := p.Decide("acme.example.com", path)
			assert.Equal(t, hostrouter.ActionPass, d.Action, "path %q", path)
			assert.Equal(t, hostrouter.ScopeTenant, d.Scope)
			assert.Equal(t, path, d.Path)
		}
	})

	t.Run("non-origin-form paths pass through", func(t *testing.T) {
		t.Parallel()
		d := p.Decide("acme.example.com", "*")
		assert.Equal(t, hostrouter.ActionPass, d.Action)
	})
}

func TestActionAndScopeStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pass", hostrouter.ActionPass.String())
	assert.Equal(t, "rewrite", hostrouter.ActionRewrite.String())
	assert.Equal(t, "redirect", hostrouter.ActionRedirect.String())
	assert.Equal(t, "forbid", hostrouter.ActionForbid.String())
	assert.Equal(t, "root", hostrouter.ScopeRoot.String())
	assert.Equal(t, "tenant", hostrouter.ScopeTenant.String())
}
