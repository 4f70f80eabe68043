package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/enquiry-service/internal/domain"
)

const actorIDKey = "auth_staff_id"

// RequireRoles returns middleware that authenticates the bearer token and
// enforces role membership before the handler runs. The acting staff id is
// stored on the request for handlers that operate on the caller's own record.
func RequireRoles(tokens *TokenManager, roles ...domain.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		staffID, err := Authenticate(tokens, roles, c.Get("Authorization"))
		if err != nil {
			return err
		}
		c.Locals(actorIDKey, staffID)
		return c.Next()
	}
}

// ActorID retrieves the authenticated staff id set by RequireRoles.
func ActorID(c *fiber.Ctx) (int64, bool) {
	val := c.Locals(actorIDKey)
	if val == nil {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok
}
