// Package redis connects the edge to Redis with go-redis, retrying until
// the server answers, and exposes a readiness probe for it.
package redis
