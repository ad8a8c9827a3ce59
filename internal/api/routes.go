package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/recover", handler.RecoverPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Post("/setup", handler.CompleteSetup)
	profile.Delete("", handler.DeleteAccount)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/logs", handler.UpsertHabitLog)
	habits.Get("/stats", handler.GetHabitStats)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.GetTasks)
	tasks.Get("/calendar", handler.GetTaskCalendar)
	tasks.Post("", handler.CreateTask)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	nutrition := api.Group("/nutrition", handler.AuthRequired)
	nutrition.Put("/goals", handler.ReplaceNutritionGoal)
	nutrition.Get("/goals", handler.GetNutritionGoal)
	nutrition.Get("/history", handler.GetNutritionHistory)
	nutrition.Get("/lookup", handler.LookupNutrition)
	nutrition.Get("/meals", handler.GetMeals)
	nutrition.Post("/meals", handler.CreateMeal)
	nutrition.Delete("/meals/:id", handler.DeleteMeal)

	kitchen := api.Group("/kitchen", handler.AuthRequired)
	kitchen.Get("/pantry", handler.GetPantry)
	kitchen.Post("/pantry", handler.CreatePantryItem)
	kitchen.Put("/pantry/:id", handler.UpdatePantryItem)
	kitchen.Delete("/pantry/:id", handler.DeletePantryItem)
	kitchen.Get("/recipes", handler.GetRecipes)
	kitchen.Post("/recipes", handler.CreateRecipe)
	kitchen.Put("/recipes/:id", handler.UpdateRecipe)
	kitchen.Delete("/recipes/:id", handler.DeleteRecipe)

	fitness := api.Group("/fitness", handler.AuthRequired)
	fitness.Get("/exercises", handler.GetExercises)
	fitness.Post("/exercises", handler.CreateExercise)
	fitness.Delete("/exercises/:id", handler.DeleteExercise)
	fitness.Get("/routines", handler.GetRoutines)
	fitness.Post("/routines", handler.CreateRoutine)
	fitness.Put("/routines/:id", handler.UpdateRoutine)
	fitness.Delete("/routines/:id", handler.DeleteRoutine)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.GetExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/habits.csv", handler.ExportHabitsCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
