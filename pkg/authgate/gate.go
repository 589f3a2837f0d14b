package authgate

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vendly/edge/internal/pathprefix"
	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/respond"
)

// RouteClass partitions request paths.
type RouteClass int

const (
	// ClassPublic paths are served to everyone.
	ClassPublic RouteClass = iota
	// ClassAuthPage paths are login and signup pages; signed-in users are
	// sent to the app root.
	ClassAuthPage
	// ClassProtected is everything else.
	ClassProtected
)

// String returns the metric and log label for c.
func (c RouteClass) String() string {
	switch c {
	case ClassPublic:
		return "public"
	case ClassAuthPage:
		return "auth_page"
	default:
		return "protected"
	}
}

// Outcome is what the gate does with a request.
type Outcome int

const (
	OutcomePass         Outcome = iota // hand the request on
	OutcomeRedirect                    // 3xx to the login page or the app root
	OutcomeUnauthorized                // JSON 401 for API paths
)

// String returns the metric and log label for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeUnauthorized:
		return "unauthorized"
	default:
		return "pass"
	}
}

// Verdict is the gate's decision for one request.
type Verdict struct {
	Class      RouteClass
	Outcome    Outcome
	Location   string // redirect target for OutcomeRedirect
	HasSession bool
}

// Gate evaluates the session policy. It is immutable after New and safe
// for concurrent use.
type Gate struct {
	cookieName       string
	secureCookieName string
	public           []string
	authPages        []string
	loginPath        string
	appRoot          string
	apiPrefix        string
	returnParam      string
	redirectCode     int

	verifier  Verifier
	skips     []SkipFunc
	logger    *slog.Logger
	observers []Observer
}

// New validates cfg and builds a Gate. A non-empty JWTSecret installs a
// JWT verifier unless WithVerifier supplies another one.
func New(cfg Config, opts ...Option) (*Gate, error) {
	name := strings.TrimSpace(cfg.CookieName)
	if name == "" || strings.ContainsAny(name, " ;=,\t") {
		return nil, fmt.Errorf("%w: cookie name %q", ErrInvalidConfig, cfg.CookieName)
	}
	for field, p := range map[string]string{
		"login path": cfg.LoginPath,
		"app root":   cfg.AppRoot,
		"api prefix": cfg.APIPrefix,
	} {
		if !strings.HasPrefix(p, "/") {
			return nil, fmt.Errorf("%w: %s %q must start with /", ErrInvalidConfig, field, p)
		}
	}

	g := &Gate{
		cookieName:       name,
		secureCookieName: SecureCookiePrefix + name,
		loginPath:        cfg.LoginPath,
		appRoot:          cfg.AppRoot,
		apiPrefix:        pathprefix.Trim(cfg.APIPrefix),
		returnParam:      cfg.ReturnParam,
		redirectCode:     cfg.RedirectCode,
		logger:           logger.Discard(),
	}

	var err error
	if g.public, err = cleanPrefixes(cfg.PublicPrefixes); err != nil {
		return nil, err
	}
	if g.authPages, err = cleanPrefixes(cfg.AuthPages); err != nil {
		return nil, err
	}
	// The login page must never be protected or anonymous users loop.
	if login := pathprefix.Trim(cfg.LoginPath); !slices.Contains(g.authPages, login) {
		g.authPages = append(g.authPages, login)
	}

	switch g.redirectCode {
	case 0:
		g.redirectCode = http.StatusTemporaryRedirect
	case http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
	default:
		return nil, fmt.Errorf("%w: redirect code %d", ErrInvalidConfig, cfg.RedirectCode)
	}

	if cfg.JWTSecret != "" {
		g.verifier = NewJWTVerifier(cfg.JWTSecret)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Classify puts path in exactly one class. Public wins over auth page.
func (g *Gate) Classify(path string) RouteClass {
	switch {
	case pathprefix.Match(path, g.public):
		return ClassPublic
	case pathprefix.Match(path, g.authPages):
		return ClassAuthPage
	default:
		return ClassProtected
	}
}

// SessionToken returns the session cookie value, preferring the secure
// variant when both are sent. Empty cookies do not count.
func (g *Gate) SessionToken(r *http.Request) (string, bool) {
	for _, name := range []string{g.secureCookieName, g.cookieName} {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value, true
		}
	}
	return "", false
}

// Evaluate applies the policy to r without writing anything.
func (g *Gate) Evaluate(r *http.Request) Verdict {
	path := r.URL.Path
	class := g.Classify(path)

	token, hasSession := g.SessionToken(r)
	if hasSession && class != ClassPublic && g.verifier != nil {
		if err := g.verifier.Verify(r.Context(), token); err != nil {
			g.logger.DebugContext(r.Context(), "session token rejected",
				logger.Component("authgate"), logger.Error(err))
			hasSession = false
		}
	}

	v := Verdict{Class: class, Outcome: OutcomePass, HasSession: hasSession}
	switch {
	case !hasSession && class == ClassProtected && pathprefix.Match(path, []string{g.apiPrefix}):
		v.Outcome = OutcomeUnauthorized
	case !hasSession && class == ClassProtected:
		v.Outcome = OutcomeRedirect
		v.Location = g.loginLocation(r)
	case hasSession && class == ClassAuthPage:
		v.Outcome = OutcomeRedirect
		v.Location = g.appRoot
	}
	return v
}

// Middleware enforces the verdict.
func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range g.skips {
				if skip(r) {
					next.ServeHTTP(w, r)
					return
				}
			}

			v := g.Evaluate(r)

			trace.SpanFromContext(r.Context()).SetAttributes(
				attribute.String("vendly.auth_class", v.Class.String()),
				attribute.String("vendly.auth_outcome", v.Outcome.String()),
			)
			for _, fn := range g.observers {
				fn(r.Context(), v)
			}
			g.logger.LogAttrs(r.Context(), slog.LevelDebug, "auth gate",
				logger.Component("authgate"),
				logger.Path(r.URL.Path),
				slog.String("class", v.Class.String()),
				logger.Action(v.Outcome.String()),
			)

			switch v.Outcome {
			case OutcomeUnauthorized:
				respond.Unauthorized(w)
			case OutcomeRedirect:
				http.Redirect(w, r, v.Location, g.redirectCode)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func (g *Gate) loginLocation(r *http.Request) string {
	if g.returnParam == "" {
		return g.loginPath
	}
	q := url.Values{g.returnParam: []string{r.URL.RequestURI()}}
	sep := "?"
	if strings.Contains(g.loginPath, "?") {
		sep = "&"
	}
	return g.loginPath + sep + q.Encode()
}

func cleanPrefixes(in []string) ([]string, error) {
	out, err := pathprefix.Clean(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return out, nil
}
