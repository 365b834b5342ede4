package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureClientID makes sure every request carries a client ID identifying
// the screen behind it. The ID has no auth meaning - the game is local and
// any client may click - it only lets the connection registry replace a
// reconnecting renderer instead of piling up dead sockets. Clients that
// don't supply one get a generated ID.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
