package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	return input, nil
}

func validateRegistrationCredentials(input credentialsInput) string {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return "invalid email"
	}
	if len(input.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

func normalizeRecoveryCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func validateRecoveryCodeFormat(code string) bool {
	return recoveryCodeRegex.MatchString(code)
}

func validateHabitPayload(payload habitPayload) string {
	if strings.TrimSpace(payload.Name) == "" {
		return "name is required"
	}
	if payload.TargetValue < 0 {
		return "target value must not be negative"
	}
	if payload.Color != "" && !hexColorRegex.MatchString(payload.Color) {
		return "invalid color"
	}
	return ""
}
