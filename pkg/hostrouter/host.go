package hostrouter

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

// HeaderForwardedHost is set by the load balancer to the client's Host.
const HeaderForwardedHost = "X-Forwarded-Host"

const maxLabelLength = 63

// labelPattern is a single lower-case DNS label.
var labelPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// EffectiveHost returns the host a request was addressed to: the first
// X-Forwarded-Host entry when trusted, otherwise Host. The result is
// lower-cased with any port and trailing dot removed. Malformed input
// yields whatever survives normalisation, never an error.
func EffectiveHost(r *http.Request, trustForwarded bool) string {
	var host string
	if trustForwarded {
		if fh := r.Header.Get(HeaderForwardedHost); fh != "" {
			host, _, _ = strings.Cut(fh, ",")
		}
	}
	if strings.TrimSpace(host) == "" {
		host = r.Host
	}
	return normalizeHost(host)
}

func normalizeHost(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(raw); err == nil {
		raw = h
	} else if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		raw = raw[1 : len(raw)-1]
	}
	return strings.TrimSuffix(raw, ".")
}

func isLabel(s string) bool {
	return len(s) <= maxLabelLength && labelPattern.MatchString(s)
}
