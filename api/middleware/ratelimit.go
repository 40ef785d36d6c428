package middleware

import (
	"errors"
	"sync"

	"github.com/DSACMS/kyc-onboarding-api/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

// WithRateLimit wraps a handler with a limiter per route, keyed by the Cognito
// subject when present and by caller IP otherwise.
func WithRateLimit(newLimiter func(name string) ratelimit.Limiter) func(fiber.Handler) fiber.Handler {
	var mu sync.RWMutex
	limiters := make(map[string]ratelimit.Limiter)

	getLimiter := func(name string) ratelimit.Limiter {
		mu.RLock()
		l := limiters[name]
		mu.RUnlock()
		if l != nil {
			return l
		}

		mu.Lock()
		defer mu.Unlock()
		if l = limiters[name]; l != nil {
			return l
		}

		l = newLimiter(name)
		limiters[name] = l
		return l
	}

	return func(next fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			limiter := getLimiter(routeName(c))

			err := limiter.Allow(c.UserContext(), callerKey(c))
			if err != nil {
				if errors.Is(err, ratelimit.ErrLimitExceeded) {
					return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
						"error":   "Too many requests",
						"details": err.Error(),
					})
				}

				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error":   "Service temporarily unavailable",
					"details": "rate limiter unavailable",
				})
			}

			return next(c)
		}
	}
}

func routeName(c *fiber.Ctx) string {
	var path string
	r := c.Route()
	if r != nil && r.Path != "" {
		path = r.Path
	} else {
		path = c.Path()
	}

	return c.Method() + " " + path
}

func callerKey(c *fiber.Ctx) string {
	if sub, ok := c.Locals(LocalSubject).(string); ok && sub != "" {
		return "sub:" + sub
	}
	return "ip:" + c.IP()
}
