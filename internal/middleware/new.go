package middleware

import (
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/scope"
)

// Middleware bundles the cross-cutting gin handlers: session-token auth and
// per-client rate limiting.
type Middleware struct {
	l       log.Logger
	tokens  scope.Manager
	limiter *rateLimiter
}

// New creates the middleware bundle. requestsPerMin bounds the generation
// endpoint per client.
func New(l log.Logger, tokens scope.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		tokens:  tokens,
		limiter: newRateLimiter(requestsPerMin),
	}
}
