package authgate

import "errors"

var (
	ErrInvalidConfig = errors.New("authgate: invalid config")
	ErrInvalidToken  = errors.New("authgate: invalid session token")
)
