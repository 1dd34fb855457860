package service

import "context"

// RateLimiter counts requests per key within a fixed window
type RateLimiter interface {
	// Allow records one request for key and reports whether it is within the limit
	Allow(ctx context.Context, key string) (bool, error)
}
