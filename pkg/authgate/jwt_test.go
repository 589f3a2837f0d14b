package authgate_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendly/edge/pkg/authgate"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signed(t *testing.T, method jwt.SigningMethod, key any, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "user-1"}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestJWTVerifier(t *testing.T) {
	t.Parallel()
	v := authgate.NewJWTVerifier(testSecret)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()
		tok := signed(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))
		assert.NoError(t, v.Verify(ctx, tok))
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		tok := signed(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour))
		assert.ErrorIs(t, v.Verify(ctx, tok), authgate.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		t.Parallel()
		tok := signed(t, jwt.SigningMethodHS256, []byte(testSecret), time.Time{})
		assert.ErrorIs(t, v.Verify(ctx, tok), authgate.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		tok := signed(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret!!"), time.Now().Add(time.Hour))
		assert.ErrorIs(t, v.Verify(ctx, tok), authgate.ErrInvalidToken)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		t.Parallel()
		tok := signed(t, jwt.SigningMethodHS512, []byte(testSecret), time.Now().Add(time.Hour))
		assert.ErrorIs(t, v.Verify(ctx, tok), authgate.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, v.Verify(ctx, "not-a-jwt"), authgate.ErrInvalidToken)
	})
}

func TestGate_JWTSecretFromConfig(t *testing.T) {
	t.Parallel()
	cfg := authgate.DefaultConfig()
	cfg.JWTSecret = testSecret
	g, err := authgate.New(cfg)
	require.NoError(t, err)

	good := signed(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))
	rec, called := run(g, request("/dashboard", session(good)))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, called = run(g, request("/dashboard", session("forged")))
	assert.False(t, called)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
}
