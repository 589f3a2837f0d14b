package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolve returns the client address of r, or "" if none is valid.
func Resolve(r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
			return ip
		}
		for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
		if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
