package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/models"
)

func (handler *Handler) GetTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	tasks, err := handler.taskService.ListTasks(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTaskCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	start, end, err := parseRangeQuery(c.Query("start"), c.Query("end"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	tasks, err := handler.taskService.CalendarTasks(user.ID, start, end, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(tasks)
}

func (handler *Handler) parseTaskPayload(c *fiber.Ctx) (models.Task, string) {
	payload := taskPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.Task{}, "invalid input"
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return models.Task{}, "title is required"
	}

	priority := payload.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !models.ValidTaskPriority(priority) {
		return models.Task{}, "invalid priority"
	}

	status := payload.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !models.ValidTaskStatus(status) {
		return models.Task{}, "invalid status"
	}

	dueAt, err := parseOptionalDateTime(payload.DueAt, handler.location)
	if err != nil {
		return models.Task{}, "invalid due date"
	}

	return models.Task{
		Title:    title,
		Notes:    payload.Notes,
		DueAt:    dueAt,
		Priority: priority,
		Status:   status,
		Category: strings.TrimSpace(payload.Category),
	}, ""
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	task, validationError := handler.parseTaskPayload(c)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}
	task.UserID = user.ID
	task.CreatedAt = time.Now().In(handler.location)

	handler.ensureDependencies()
	if err := handler.taskService.CreateTask(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	updated, validationError := handler.parseTaskPayload(c)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	handler.ensureDependencies()
	task, err := handler.taskService.FindTask(taskID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}

	task.Title = updated.Title
	task.Notes = updated.Notes
	task.DueAt = updated.DueAt
	task.Priority = updated.Priority
	task.Status = updated.Status
	task.Category = updated.Category
	if err := handler.taskService.SaveTask(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	handler.ensureDependencies()
	if err := handler.taskService.DeleteTask(taskID, user.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
