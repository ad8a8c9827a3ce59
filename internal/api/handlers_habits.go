package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/models"
	"github.com/lifeos-dev/lifeos/internal/services"
)

const (
	defaultStatsWindowDays = 30
	maxStatsWindowDays     = 365
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	habits, err := handler.habitService.ListHabits(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(habits)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateHabitPayload(payload); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	habit := models.Habit{
		UserID:      user.ID,
		Name:        strings.TrimSpace(payload.Name),
		TargetValue: payload.TargetValue,
		Unit:        strings.TrimSpace(payload.Unit),
		Color:       payload.Color,
		Icon:        payload.Icon,
		IsActive:    true,
		CreatedAt:   time.Now().In(handler.location),
	}

	handler.ensureDependencies()
	if err := handler.habitService.CreateHabit(&habit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateHabitPayload(payload); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.FindHabit(habitID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "habit not found")
	}

	habit.Name = strings.TrimSpace(payload.Name)
	habit.TargetValue = payload.TargetValue
	habit.Unit = strings.TrimSpace(payload.Unit)
	habit.Color = payload.Color
	habit.Icon = payload.Icon
	if err := handler.habitService.SaveHabit(&habit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(habit)
}

// DeleteHabit deactivates; habit rows and their logs survive for history.
func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	handler.ensureDependencies()
	if err := handler.habitService.DeactivateHabit(habitID, user.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "habit not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) UpsertHabitLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := habitLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if payload.Value < 0 {
		return apiError(c, fiber.StatusBadRequest, "value must not be negative")
	}

	handler.ensureDependencies()
	entry, err := handler.habitService.UpsertLog(habitID, user.ID, day, payload.Value, handler.location)
	if err != nil {
		return apiError(c, habitErrorStatus(err), err.Error())
	}
	return c.JSON(entry)
}

func habitErrorStatus(err error) int {
	if errors.Is(err, services.ErrHabitNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func (handler *Handler) GetHabitStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := defaultStatsWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxStatsWindowDays {
			return apiError(c, fiber.StatusBadRequest, "invalid days")
		}
		windowDays = parsed
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	stats, err := handler.habitService.BuildStats(user.ID, windowDays, now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(stats)
}
