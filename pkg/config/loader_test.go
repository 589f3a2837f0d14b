package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendly/edge/pkg/config"
)

type routingDefaults struct {
	RootDomain string   `env:"CFGTEST_ROOT_DOMAIN" envDefault:"example.com" yaml:"root_domain"`
	Reserved   []string `env:"CFGTEST_RESERVED" envDefault:"www,admin" envSeparator:"," yaml:"reserved_names"`
	Code       int      `env:"CFGTEST_CODE" envDefault:"307" yaml:"redirect_code"`
}

type routingFromEnv struct {
	RootDomain string   `env:"CFGTEST_ENV_ROOT_DOMAIN"`
	Reserved   []string `env:"CFGTEST_ENV_RESERVED" envSeparator:","`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED"`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_REQUIRED_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg routingDefaults
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "example.com", cfg.RootDomain)
	assert.Equal(t, []string{"www", "admin"}, cfg.Reserved)
	assert.Equal(t, 307, cfg.Code)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_ENV_ROOT_DOMAIN", "vendly.shop")
	t.Setenv("CFGTEST_ENV_RESERVED", "api,docs")

	var cfg routingFromEnv
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "vendly.shop", cfg.RootDomain)
	assert.Equal(t, []string{"api", "docs"}, cfg.Reserved)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("CFGTEST_CACHED", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFGTEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "second load should be served from cache")

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFGTEST_REQUIRED_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *routingDefaults
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	t.Run("overlays only keys present in the file", func(t *testing.T) {
		t.Parallel()
		cfg := routingDefaults{RootDomain: "example.com", Reserved: []string{"www"}, Code: 307}
		path := write(t, "reserved_names: [www, admin, api]\n")

		require.NoError(t, config.LoadFile(path, &cfg))
		assert.Equal(t, "example.com", cfg.RootDomain)
		assert.Equal(t, []string{"www", "admin", "api"}, cfg.Reserved)
		assert.Equal(t, 307, cfg.Code)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()
		var cfg routingDefaults
		path := write(t, "root_domian: typo.com\n")

		assert.ErrorIs(t, config.LoadFile(path, &cfg), config.ErrParsingFile)
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()
		var cfg routingDefaults
		err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})
}
