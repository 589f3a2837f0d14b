package hostrouter_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendly/edge/pkg/hostrouter"
)

func TestEffectiveHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		host      string
		forwarded string
		trust     bool
		want      string
	}{
		{"plain host", "acme.example.com", "", true, "acme.example.com"},
		{"strips port", "acme.example.com:8080", "", true, "acme.example.com"},
		{"lower-cases", "ACME.Example.com", "", true, "acme.example.com"},
		{"trailing dot", "acme.example.com.", "", true, "acme.example.com"},
		{"prefers forwarded host", "internal:8080", "acme.example.com", true, "acme.example.com"},
		{"first forwarded entry wins", "internal", "acme.example.com:443, proxy.local", true, "acme.example.com"},
		{"ignores forwarded host when untrusted", "example.com", "acme.example.com", false, "example.com"},
		{"blank forwarded host falls back", "example.com", " ", true, "example.com"},
		{"ipv6 with port", "[::1]:3000", "", true, "::1"},
		{"bracketed ipv6", "[::1]", "", true, "::1"},
		{"missing host", "", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/", nil)
			req.Host = tt.host
			if tt.forwarded != "" {
				req.Header.Set(hostrouter.HeaderForwardedHost, tt.forwarded)
			}
			assert.Equal(t, tt.want, hostrouter.EffectiveHost(req, tt.trust))
		})
	}
}
