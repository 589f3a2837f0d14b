package hostrouter

import "net/http"

// Config holds the routing inputs. It is loaded once at start-up from the
// environment and optionally the policy file, then frozen into a Policy.
type Config struct {
	// RootDomain is the platform apex, e.g. "vendly.shop". No leading dot.
	RootDomain string `env:"TENANT_ROOT_DOMAIN" yaml:"root_domain"`
	// DevDomain mirrors RootDomain for local development. Empty disables it.
	DevDomain string `env:"TENANT_DEV_DOMAIN" envDefault:"localhost" yaml:"dev_domain"`
	// ReservedNames are labels that never identify a tenant.
	ReservedNames []string `env:"TENANT_RESERVED_NAMES" envDefault:"www,admin,api,ai,support,docs" envSeparator:"," yaml:"reserved_names"`
	// AdminPrefixes redirect to "/" on tenant hosts.
	AdminPrefixes []string `env:"TENANT_ADMIN_PREFIXES" envDefault:"/admin" envSeparator:"," yaml:"admin_prefixes"`
	// AdminAPIPrefixes answer 403 on tenant hosts.
	AdminAPIPrefixes []string `env:"TENANT_ADMIN_API_PREFIXES" envDefault:"/api/admin" envSeparator:"," yaml:"admin_api_prefixes"`
	// SkipPrefixes are never evaluated: static assets and framework internals.
	SkipPrefixes []string `env:"TENANT_SKIP_PREFIXES" envDefault:"/_next,/static,/assets,/favicon.ico,/robots.txt" envSeparator:"," yaml:"skip_prefixes"`
	// TrustForwardedHost prefers X-Forwarded-Host over Host.
	TrustForwardedHost bool `env:"TENANT_TRUST_FORWARDED_HOST" envDefault:"true" yaml:"trust_forwarded_host"`
	// RedirectCode is the 3xx used for admin redirects.
	RedirectCode int `env:"TENANT_REDIRECT_CODE" envDefault:"307" yaml:"redirect_code"`
}

// DefaultConfig returns the defaults documented on Config for rootDomain.
func DefaultConfig(rootDomain string) Config {
	return Config{
		RootDomain:         rootDomain,
		DevDomain:          "localhost",
		ReservedNames:      []string{"www", "admin", "api", "ai", "support", "docs"},
		AdminPrefixes:      []string{"/admin"},
		AdminAPIPrefixes:   []string{"/api/admin"},
		SkipPrefixes:       []string{"/_next", "/static", "/assets", "/favicon.ico", "/robots.txt"},
		TrustForwardedHost: true,
		RedirectCode:       http.StatusTemporaryRedirect,
	}
}
