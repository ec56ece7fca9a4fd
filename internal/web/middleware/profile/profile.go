// Package profile issues the cookie identifying a browser profile.
//
// The profile id is a random UUID. It is the only thing the service knows
// about a visitor and keys the stored barcode settings. Requests carrying a
// missing or malformed id get a fresh one.
package profile

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/barcode-maker/barcode-maker/internal/web/handler"
)

const cookieMaxAge = 400 * 24 * time.Hour

// Config of the profile middleware.
type Config struct {
	// CookieName defaults to "bm_profile".
	CookieName string

	// Secure sets the Secure flag of the cookie.
	Secure bool
}

// New creates the profile middleware.
func New(cfg Config) fiber.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = "bm_profile"
	}

	return func(c fiber.Ctx) error {
		id := c.Cookies(cfg.CookieName)

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()

			c.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cookieMaxAge.Seconds()),
				Secure:   cfg.Secure,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(handler.LocalsProfileID, id)

		return c.Next()
	}
}
