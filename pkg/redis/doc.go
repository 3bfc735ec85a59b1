// Package redis connects to a Redis server with retry, wrapping the
// go-redis client. The resulting *redis.Client backs the Redis-based
// account store in svc/auth.
package redis
