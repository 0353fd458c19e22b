package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

// SessionCookie is the cookie carrying the signed admin session token.
const SessionCookie = "session"

// Session returns the JWT middleware guarding admin routes. The token lives
// in an HTTP-only cookie set by the login handler; requests without a valid
// one get a 401 with the uniform error body.
func Session(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + SessionCookie,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		},
	})
}
