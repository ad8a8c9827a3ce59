package api

import (
	"time"

	"github.com/lifeos-dev/lifeos/internal/db"
	"github.com/lifeos-dev/lifeos/internal/nutrition"
	"github.com/lifeos-dev/lifeos/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, foodResolver *nutrition.Resolver, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		foodResolver: foodResolver,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.taskService = services.NewTaskService(handler.repositories.Tasks)
	handler.nutritionService = services.NewNutritionService(handler.repositories.Nutrition)
	handler.fitnessService = services.NewFitnessService(handler.repositories.Fitness)
	handler.exportService = services.NewExportService(handler.repositories.Habits, handler.repositories.Nutrition)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
