package pathprefix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendly/edge/internal/pathprefix"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	prefixes := []string{"/admin", "/_next"}

	tests := []struct {
		path string
		want bool
	}{
		{"/admin", true},
		{"/admin/users", true},
		{"/administrator", false},
		{"/_next/static/x.js", true},
		{"/products", false},
		{"/", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pathprefix.Match(tt.path, prefixes), tt.path)
	}
	assert.False(t, pathprefix.Match("/admin", nil))
}

func TestTrim(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/", pathprefix.Trim("/"))
	assert.Equal(t, "/api", pathprefix.Trim("/api/"))
	assert.Equal(t, "/api", pathprefix.Trim("/api"))
}

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("trims and drops empty entries", func(t *testing.T) {
		t.Parallel()
		got, err := pathprefix.Clean([]string{" /admin/ ", "", "/", "/api"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/admin", "/", "/api"}, got)
	})

	t.Run("rejects relative prefixes", func(t *testing.T) {
		t.Parallel()
		_, err := pathprefix.Clean([]string{"/ok", "static"})
		assert.ErrorIs(t, err, pathprefix.ErrRelative)
	})
}
