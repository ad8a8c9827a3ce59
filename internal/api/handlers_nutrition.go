package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/models"
	"github.com/lifeos-dev/lifeos/internal/nutrition"
	"github.com/lifeos-dev/lifeos/internal/services"
)

// ReplaceNutritionGoal makes the submitted targets the single active goal.
func (handler *Handler) ReplaceNutritionGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := goalPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.CaloriesTarget <= 0 {
		return apiError(c, fiber.StatusBadRequest, "calories target is required")
	}

	handler.ensureDependencies()
	input := services.GoalInput{
		CaloriesTarget: payload.CaloriesTarget,
		ProteinG:       payload.ProteinG,
		CarbsG:         payload.CarbsG,
		FatG:           payload.FatG,
		FiberG:         payload.FiberG,
		WaterML:        payload.WaterML,
	}
	if _, err := handler.nutritionService.ReplaceGoal(user.ID, input, time.Now().In(handler.location)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) GetNutritionGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	goal, found, err := handler.nutritionService.ActiveGoal(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no active goal")
	}
	return c.JSON(goal)
}

func (handler *Handler) GetNutritionHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	start, end, err := parseRangeQuery(c.Query("start"), c.Query("end"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	history, err := handler.nutritionService.BuildHistory(user.ID, start, end, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(history)
}

// LookupNutrition resolves a food name through the source chain. Source
// failures are invisible here; only chain exhaustion surfaces as 404.
func (handler *Handler) LookupNutrition(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.foodResolver == nil {
		return apiError(c, fiber.StatusInternalServerError, "nutrition lookup not configured")
	}

	food := strings.TrimSpace(c.Query("food"))
	macros, err := handler.foodResolver.Resolve(c.Context(), food)
	if err != nil {
		if errors.Is(err, nutrition.ErrQueryTooShort) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, nutrition.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "food not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "nutrition lookup failed")
	}
	return c.JSON(macros)
}

func (handler *Handler) GetMeals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := time.Now().In(handler.location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDayParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	handler.ensureDependencies()
	meals, err := handler.nutritionService.ListMealsForDay(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(meals)
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	mealType := payload.MealType
	if mealType == "" {
		mealType = models.MealTypeSnack
	}
	if !models.ValidMealType(mealType) {
		return apiError(c, fiber.StatusBadRequest, "invalid meal type")
	}

	meal := models.Meal{
		UserID:    user.ID,
		Name:      name,
		Date:      day,
		MealType:  mealType,
		Calories:  payload.Calories,
		ProteinG:  payload.ProteinG,
		CarbsG:    payload.CarbsG,
		FatG:      payload.FatG,
		CreatedAt: time.Now().In(handler.location),
	}

	handler.ensureDependencies()
	if err := handler.nutritionService.AddMeal(&meal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	mealID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	handler.ensureDependencies()
	if err := handler.nutritionService.RemoveMeal(mealID, user.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
