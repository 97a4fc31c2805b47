package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobcompass/jobcompass-api/internal/config"
	"github.com/jobcompass/jobcompass-api/internal/service"
	"github.com/jobcompass/jobcompass-api/internal/util"
)

const userIDKey = "userId"

// Auth resolves the caller's identity through the external auth
// collaborator and stores the user id on the request. Unauthenticated
// requests never reach the protected handlers.
func Auth(auth service.AuthenticatorInterface) fiber.Handler {
	authConfig := config.LoadAuthConfig()
	return func(c *fiber.Ctx) error {
		token := c.Cookies(authConfig.SessionCookie)
		if token == "" {
			// non-browser clients send the token as a bearer header
			header := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}

		userID, err := auth.ResolveUser(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(util.ErrorBody{Message: "Unauthorized"})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
