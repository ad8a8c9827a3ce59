package api

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/services"
)

func (handler *Handler) GetExportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	summary, err := handler.exportService.BuildSummary(user.ID, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	data, err := handler.exportService.BuildData(user.ID, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lifeos-export.json"`)
	return c.JSON(data)
}

func (handler *Handler) ExportHabitsCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	rows, err := handler.exportService.BuildHabitCSVRows(user.ID, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	buffer := bytes.Buffer{}
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(services.ExportHabitCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.Habit,
			strconv.FormatFloat(row.Value, 'f', -1, 64),
			row.Unit,
			strconv.FormatFloat(row.Target, 'f', -1, 64),
			strconv.FormatBool(row.Completed),
		}
		if err := writer.Write(record); err != nil {
			return apiError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lifeos-habits.csv"`)
	return c.Send(buffer.Bytes())
}
