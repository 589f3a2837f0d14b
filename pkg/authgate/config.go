package authgate

import "net/http"

// SecureCookiePrefix marks the variant of the session cookie set over TLS.
const SecureCookiePrefix = "__Secure-"

// Config is the gate's process-wide configuration.
type Config struct {
	// CookieName is the plain session cookie; SecureCookiePrefix+CookieName
	// is accepted as well.
	CookieName     string   `env:"AUTH_SESSION_COOKIE" envDefault:"session-token" yaml:"cookie_name"`
	PublicPrefixes []string `env:"AUTH_PUBLIC_PREFIXES" envDefault:"/_next,/static,/assets,/favicon.ico,/robots.txt,/api/auth,/.well-known,/healthz,/readyz,/metrics" envSeparator:"," yaml:"public_prefixes"`
	AuthPages      []string `env:"AUTH_PAGES" envDefault:"/login,/signup" envSeparator:"," yaml:"auth_pages"`
	LoginPath      string   `env:"AUTH_LOGIN_PATH" envDefault:"/login" yaml:"login_path"`
	AppRoot        string   `env:"AUTH_APP_ROOT" envDefault:"/" yaml:"app_root"`
	APIPrefix      string   `env:"AUTH_API_PREFIX" envDefault:"/api" yaml:"api_prefix"`
	// ReturnParam, when set, carries the requested path to the login page
	// as a query parameter.
	ReturnParam  string `env:"AUTH_RETURN_PARAM" envDefault:"" yaml:"return_param"`
	JWTSecret    string `env:"AUTH_JWT_SECRET" envDefault:"" yaml:"-"`
	RedirectCode int    `env:"AUTH_REDIRECT_CODE" envDefault:"307" yaml:"redirect_code"`
}

// DefaultConfig returns the defaults documented on Config.
func DefaultConfig() Config {
	return Config{
		CookieName: "session-token",
		PublicPrefixes: []string{
			"/_next", "/static", "/assets", "/favicon.ico", "/robots.txt",
			"/api/auth", "/.well-known", "/healthz", "/readyz", "/metrics",
		},
		AuthPages:    []string{"/login", "/signup"},
		LoginPath:    "/login",
		AppRoot:      "/",
		APIPrefix:    "/api",
		RedirectCode: http.StatusTemporaryRedirect,
	}
}
