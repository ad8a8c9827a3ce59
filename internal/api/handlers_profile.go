package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"email":             user.Email,
		"display_name":      user.DisplayName,
		"timezone":          user.Timezone,
		"profile_completed": user.ProfileCompleted,
	})
}

// CompleteSetup finishes the first-login setup flow; until it runs, the
// guard keeps every other API path behind a 403.
func (handler *Handler) CompleteSetup(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileSetupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return apiError(c, fiber.StatusBadRequest, "display name is required")
	}

	timezone := strings.TrimSpace(input.Timezone)
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid timezone")
		}
	}

	handler.ensureDependencies()
	if err := handler.repositories.Users.CompleteProfile(user.ID, displayName, timezone); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
