package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"notes-to-tasks/pkg/log"
)

const (
	limiterCacheSize = 10000
	limiterIdleTTL   = 10 * time.Minute
)

// Middleware holds the state shared by the gin middlewares.
type Middleware struct {
	l              log.Logger
	requestsPerMin int

	mu       *sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:              l,
		requestsPerMin: requestsPerMin,
		mu:             &sync.Mutex{},
		limiters:       expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
	}
}
