package ratelimit

import (
	"fmt"
	"strconv"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
)

// Middleware applies one limiter to every request it guards.
type Middleware struct {
	limiter Limiter
	limit   int
	// ownerLocal is the fiber.Ctx local holding the authenticated owner id.
	ownerLocal string
	logger     types.Logger
}

// NewMiddleware creates the middleware. Requests carrying an owner id in the
// ownerLocal local are limited per owner, all others per client IP.
func NewMiddleware(limiter Limiter, limit int, ownerLocal string, logger types.Logger) *Middleware {
	return &Middleware{limiter: limiter, limit: limit, ownerLocal: ownerLocal, logger: logger}
}

// Handler returns the fiber handler.
func (m *Middleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := m.key(c)
		if key == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "Forbidden",
				"message": "Unable to determine client identity",
			})
		}

		result, err := m.limiter.Allow(c.Context(), key)
		if err != nil {
			// Fail open.
			m.logger.Warn("Rate limit check failed", "key", key, "error", err)
			c.Set("X-RateLimit-Error", "unavailable")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			return exceeded(c, result)
		}
		return c.Next()
	}
}

func (m *Middleware) key(c *fiber.Ctx) string {
	if owner, ok := c.Locals(m.ownerLocal).(string); ok && owner != "" {
		return "owner:" + owner
	}
	if ip := c.IP(); ip != "" {
		return "ip:" + ip
	}
	return ""
}

func exceeded(c *fiber.Ctx, result *Result) error {
	retryAfter := int(result.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	c.Set("Retry-After", strconv.Itoa(retryAfter))

	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error":       "Too Many Requests",
		"message":     fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds.", retryAfter),
		"retry-after": retryAfter,
	})
}
