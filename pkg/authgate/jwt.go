package authgate

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier checks HS256 session tokens: signature, algorithm and a
// mandatory, unexpired exp claim.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns a verifier keyed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify returns an error wrapping ErrInvalidToken unless token is a
// valid, unexpired HS256 JWT signed with the verifier's secret.
func (v *JWTVerifier) Verify(_ context.Context, token string) error {
	_, err := v.parser.Parse(token, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	return nil
}
