package handler

import (
	"studyflow/internal/domain"
	"studyflow/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// requireUserID pulls the authenticated user id set by the auth
// middleware. Routes behind Protected always have it; this guards
// against misregistered routes.
func requireUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthenticatedError()
	}
	return userID, nil
}
