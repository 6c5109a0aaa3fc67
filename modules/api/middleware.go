package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	domain "github.com/felixkapfer/finalghecko/domain/user"
	"github.com/felixkapfer/finalghecko/modules/user"
)

const (
	// UserContextKey holds the *domain.Claims of the authenticated owner.
	UserContextKey = "user"
	// OwnerContextKey holds the owner id as a plain string for the rate limiter.
	OwnerContextKey = "owner-id"
)

// AuthMiddleware validates the bearer token and stores the owner claims.
func AuthMiddleware(users user.UserPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, "Invalid authorization header format. Use: Bearer <token>")
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return unauthorized(c, "Token is required")
		}

		claims, err := users.ValidateToken(c.UserContext(), token)
		if err != nil || claims == nil || claims.UserID == "" {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(UserContextKey, claims)
		c.Locals(OwnerContextKey, claims.UserID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}

// ownerID returns the authenticated owner. AuthMiddleware guarantees it is set
// on protected routes.
func ownerID(c *fiber.Ctx) string {
	claims, ok := c.Locals(UserContextKey).(*domain.Claims)
	if !ok || claims == nil {
		return ""
	}
	return claims.UserID
}
