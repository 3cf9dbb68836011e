package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"notes-to-tasks/pkg/response"
)

// RateLimit allows each client IP requestsPerMin requests per minute with
// an equal burst. Idle clients are forgotten after limiterIdleTTL.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.requestsPerMin <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter(ip).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s exceeded %d requests/min", ip, m.requestsPerMin)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) limiter(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.limiters.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.requestsPerMin)), m.requestsPerMin)
	m.limiters.Add(key, l)
	return l
}
