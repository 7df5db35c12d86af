package auth

import "github.com/gofiber/fiber/v2"

// Header carries the API key on requests.
const Header = "X-Api-Key"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables authentication.
	ApiKey string
}

// New returns middleware that rejects requests without the configured
// API key. With an empty key (local sessions) it passes everything.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || c.Get(Header) == cfg.ApiKey {
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid api key",
		})
	}
}
