package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/models"
	"github.com/lifeos-dev/lifeos/internal/services"
	"gorm.io/datatypes"
)

func (handler *Handler) GetExercises(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	exercises, err := handler.fitnessService.ListExercises(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(exercises)
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := exercisePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	exercise := models.Exercise{
		UserID:      user.ID,
		Name:        name,
		MuscleGroup: strings.TrimSpace(payload.MuscleGroup),
		Equipment:   strings.TrimSpace(payload.Equipment),
	}

	handler.ensureDependencies()
	if err := handler.fitnessService.CreateCustomExercise(&exercise); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}

// DeleteExercise removes a custom exercise. Catalog entries are shared and
// cannot be deleted, which surfaces as not found.
func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	exerciseID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid exercise id")
	}

	handler.ensureDependencies()
	if err := handler.fitnessService.DeleteCustomExercise(exerciseID, user.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "exercise not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetRoutines(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	routines, err := handler.fitnessService.ListRoutines(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(routines)
}

func (handler *Handler) CreateRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	routine, message := parseRoutinePayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	routine.UserID = user.ID
	routine.CreatedAt = time.Now().In(handler.location)

	handler.ensureDependencies()
	if err := handler.fitnessService.SaveRoutineForUser(&routine); err != nil {
		return handler.routineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(routine)
}

func (handler *Handler) UpdateRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	routineID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid routine id")
	}

	handler.ensureDependencies()
	existing, err := handler.fitnessService.FindRoutine(routineID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}

	routine, message := parseRoutinePayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	existing.Name = routine.Name
	existing.DayOfWeek = routine.DayOfWeek
	existing.Entries = routine.Entries

	if err := handler.fitnessService.SaveRoutineForUser(&existing); err != nil {
		return handler.routineError(c, err)
	}
	return c.JSON(existing)
}

func (handler *Handler) DeleteRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	routineID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid routine id")
	}

	handler.ensureDependencies()
	if err := handler.fitnessService.DeleteRoutine(routineID, user.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) routineError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUnknownExercise) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, err.Error())
}

func parseRoutinePayload(c *fiber.Ctx) (models.Routine, string) {
	payload := routinePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.Routine{}, "invalid input"
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return models.Routine{}, "name is required"
	}
	if payload.DayOfWeek < 0 || payload.DayOfWeek > 6 {
		return models.Routine{}, "day_of_week must be between 0 and 6"
	}

	entries := make([]models.RoutineEntry, 0, len(payload.Entries))
	for _, entry := range payload.Entries {
		if entry.ExerciseID == 0 {
			return models.Routine{}, "entry exercise_id is required"
		}
		if entry.Sets <= 0 || entry.Reps < 0 {
			return models.Routine{}, "entry sets and reps must be positive"
		}
		entries = append(entries, models.RoutineEntry{
			ExerciseID: entry.ExerciseID,
			Sets:       entry.Sets,
			Reps:       entry.Reps,
			WeightKG:   entry.WeightKG,
		})
	}

	return models.Routine{
		Name:      name,
		DayOfWeek: payload.DayOfWeek,
		Entries:   datatypes.NewJSONType(entries),
	}, ""
}
