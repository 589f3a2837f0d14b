package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: empty connection url, set REDIS_URL")
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection string")
	ErrRedisNotReady                = errors.New("redis: server did not become ready")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck failed")
)
