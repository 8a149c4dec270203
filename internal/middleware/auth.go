// Package middleware provides authentication, logging, metrics, and rate
// limiting middleware for the application.
package middleware

import (
	"context"

	"devlink/internal/models"
	"devlink/internal/token"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the request header carrying the bearer credential.
const TokenHeader = "x-auth-token"

// AuthRequired enforces authentication for protected routes. It reads the
// credential from the x-auth-token header, verifies it, and stores the
// resolved user id in Locals("userID") and the request context. A missing or
// invalid token short-circuits with 401 before the downstream handler runs.
func AuthRequired(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(TokenHeader)
		if tokenString == "" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("No token, authorization denied"))
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Token is not valid"))
		}

		c.Locals("userID", userID)
		ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
