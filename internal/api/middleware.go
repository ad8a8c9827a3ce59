package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/models"
)

const (
	authCookieName = "lifeos_auth"
	contextUserKey = "current_user"
)

// currentUser is the nullable variant of the session guard: handlers that
// tolerate anonymity check the second return value themselves.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
