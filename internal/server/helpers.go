package server

import (
	"strconv"

	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's id placed in Locals by the
// auth middleware. Handlers behind AuthRequired can rely on it being set.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseID parses a numeric route parameter. Anything that is not a positive
// integer reads as the named resource not existing, never as a server error.
func parseID(c *fiber.Ctx, param, resource string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource)
	}
	return uint(id), nil
}
