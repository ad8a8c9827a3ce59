package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired classifies every request into one of three states:
// unauthenticated, authenticated without a completed profile, and
// authenticated-complete. API paths answer with JSON statuses, everything
// else redirects.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	if !user.ProfileCompleted && !isSetupPath(c.Path()) {
		if strings.HasPrefix(c.Path(), "/api/") {
			if c.Path() == "/api/auth/logout" {
				return c.Next()
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "profile setup required"})
		}
		return c.Redirect("/setup", fiber.StatusSeeOther)
	}

	return c.Next()
}

func isSetupPath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "/setup" || strings.HasPrefix(cleanPath, "/setup/") {
		return true
	}
	return cleanPath == "/api/profile" || strings.HasPrefix(cleanPath, "/api/profile/")
}
