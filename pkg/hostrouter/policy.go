package hostrouter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vendly/edge/internal/pathprefix"
)

// Scope says whom a request is addressed to.
type Scope int

const (
	// ScopeRoot is marketplace-wide traffic: apex, www, reserved labels,
	// unknown hosts.
	ScopeRoot Scope = iota
	// ScopeTenant is traffic for one store.
	ScopeTenant
)

// String returns the metric and log label for s.
func (s Scope) String() string {
	if s == ScopeTenant {
		return "tenant"
	}
	return "root"
}

// Classification is the result of inspecting a host.
type Classification struct {
	Scope  Scope
	Tenant string // set only for ScopeTenant
}

// Action is what the middleware does with a request.
type Action int

const (
	// ActionPass hands the request on unchanged.
	ActionPass Action = iota
	// ActionRewrite prefixes the path with /<tenant>.
	ActionRewrite
	// ActionRedirect sends tenant admin pages back to the storefront root.
	ActionRedirect
	// ActionForbid answers tenant admin API calls with 403.
	ActionForbid
)

// String returns the metric and log label for a.
func (a Action) String() string {
	switch a {
	case ActionRewrite:
		return "rewrite"
	case ActionRedirect:
		return "redirect"
	case ActionForbid:
		return "forbid"
	default:
		return "pass"
	}
}

// Decision is the routing outcome for one request.
type Decision struct {
	Action Action
	Scope  Scope
	Tenant string
	// Path is the path downstream routing sees: the rewritten path for
	// ActionRewrite, the inbound path otherwise.
	Path string
	// Location is the redirect target for ActionRedirect.
	Location string
}

// Policy is the frozen routing configuration. The zero value is not
// usable; build one with NewPolicy.
type Policy struct {
	root             string
	dev              string
	reserved         map[string]struct{}
	adminPrefixes    []string
	adminAPIPrefixes []string
	skipPrefixes     []string
	trustForwarded   bool
	redirectCode     int
}

// NewPolicy validates cfg and builds an immutable Policy.
func NewPolicy(cfg Config) (*Policy, error) {
	root, err := normalizeDomain(cfg.RootDomain)
	if err != nil || root == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRootDomain, cfg.RootDomain)
	}
	dev, err := normalizeDomain(cfg.DevDomain)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDevDomain, cfg.DevDomain)
	}

	p := &Policy{
		root:           root,
		dev:            dev,
		reserved:       make(map[string]struct{}, len(cfg.ReservedNames)),
		trustForwarded: cfg.TrustForwardedHost,
		redirectCode:   cfg.RedirectCode,
	}
	for _, name := range cfg.ReservedNames {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			p.reserved[name] = struct{}{}
		}
	}
	if p.adminPrefixes, err = cleanPrefixes(cfg.AdminPrefixes); err != nil {
		return nil, err
	}
	if p.adminAPIPrefixes, err = cleanPrefixes(cfg.AdminAPIPrefixes); err != nil {
		return nil, err
	}
	if p.skipPrefixes, err = cleanPrefixes(cfg.SkipPrefixes); err != nil {
		return nil, err
	}

	switch p.redirectCode {
	case 0:
		p.redirectCode = http.StatusTemporaryRedirect
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidRedirectCode, cfg.RedirectCode)
	}

	return p, nil
}

// RootDomain returns the normalised platform apex.
func (p *Policy) RootDomain() string { return p.root }

// IsReserved reports whether label can never be a tenant.
func (p *Policy) IsReserved(label string) bool {
	_, ok := p.reserved[label]
	return ok
}

// Classify decides whether host addresses the platform or a tenant.
// Unknown and malformed hosts are platform traffic.
func (p *Policy) Classify(host string) Classification {
	host = normalizeHost(host)
	if host == "" {
		return Classification{Scope: ScopeRoot}
	}
	if c, ok := p.match(host, p.root); ok {
		return c
	}
	if p.dev != "" {
		if c, ok := p.match(host, p.dev); ok {
			return c
		}
	}
	return Classification{Scope: ScopeRoot}
}

func (p *Policy) match(host, domain string) (Classification, bool) {
	if host == domain || host == "www."+domain {
		return Classification{Scope: ScopeRoot}, true
	}
	candidate, ok := strings.CutSuffix(host, "."+domain)
	if !ok {
		return Classification{}, false
	}
	// Nested labels and garbage stay on the platform rather than becoming
	// tenant identifiers.
	if !isLabel(candidate) || p.IsReserved(candidate) {
		return Classification{Scope: ScopeRoot}, true
	}
	return Classification{Scope: ScopeTenant, Tenant: candidate}, true
}

// Decide computes the routing outcome for host and path.
func (p *Policy) Decide(host, path string) Decision {
	c := p.Classify(host)
	d := Decision{Action: ActionPass, Scope: c.Scope, Tenant: c.Tenant, Path: path}

	if c.Scope != ScopeTenant || !strings.HasPrefix(path, "/") || pathprefix.Match(path, p.skipPrefixes) {
		return d
	}

	rel, scoped := tenantRelative(path, c.Tenant)
	switch {
	case pathprefix.Match(rel, p.adminAPIPrefixes):
		d.Action = ActionForbid
	case pathprefix.Match(rel, p.adminPrefixes):
		d.Action = ActionRedirect
		d.Location = "/"
	case scoped:
		// already /<tenant>/...: rewriting again would double-prefix
	default:
		d.Action = ActionRewrite
		d.Path = scopePath(c.Tenant, path)
	}
	return d
}

// tenantRelative strips a leading /<tenant> segment.
func tenantRelative(path, tenant string) (string, bool) {
	prefix := "/" + tenant
	if path == prefix {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(path, prefix+"/"); ok {
		return "/" + rest, true
	}
	return path, false
}

func scopePath(tenant, path string) string {
	if path == "/" || path == "" {
		return "/" + tenant
	}
	return "/" + tenant + path
}

func normalizeDomain(d string) (string, error) {
	d = strings.ToLower(strings.TrimSpace(d))
	if d == "" {
		return "", nil
	}
	if strings.HasPrefix(d, ".") || strings.HasSuffix(d, ".") || strings.ContainsAny(d, ":/ ") {
		return "", fmt.Errorf("malformed domain %q", d)
	}
	for label := range strings.SplitSeq(d, ".") {
		if !isLabel(label) {
			return "", fmt.Errorf("malformed label %q", label)
		}
	}
	return d, nil
}

func cleanPrefixes(in []string) ([]string, error) {
	out, err := pathprefix.Clean(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	return out, nil
}
