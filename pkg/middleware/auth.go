// Package middleware holds the Fiber middleware shared by protected routes.
package middleware

import (
	"errors"
	"strings"

	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by TokenProtected.
const (
	UserIDKey = "userID"
	TokenKey  = "token"
)

// TokenProtected resolves the bearer token through the auth gate before the
// handler runs. A missing header is 401; a token that maps to no session is
// 404, matching the wallet API's historical contract. Handlers behind this
// middleware read the authenticated user id from c.Locals(UserIDKey).
func TokenProtected(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "missing access token",
			})
		}
		userID, err := authSvc.Resolve(c.Context(), token)
		if err != nil {
			if errors.Is(err, userdomain.ErrSessionNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "invalid token",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "internal server error",
			})
		}
		c.Locals(UserIDKey, userID)
		c.Locals(TokenKey, token)
		return c.Next()
	}
}
