package middleware

import (
	"context"

	"taskie/internal/model"
	"taskie/pkg/log"
)

// Authenticator resolves a session token to the caller's scope.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l       log.Logger
	auth    Authenticator
	limiter *rateLimiter
}

// New creates the server middleware. requestsPerMin <= 0 disables rate
// limiting.
func New(l log.Logger, auth Authenticator, requestsPerMin int) Middleware {
	mw := Middleware{
		l:    l,
		auth: auth,
	}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
