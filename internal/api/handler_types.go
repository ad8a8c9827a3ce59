package api

import (
	"regexp"
	"time"

	"github.com/lifeos-dev/lifeos/internal/db"
	"github.com/lifeos-dev/lifeos/internal/nutrition"
	"github.com/lifeos-dev/lifeos/internal/services"
	"gorm.io/gorm"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
var recoveryCodeRegex = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService      *services.AuthService
	habitService     *services.HabitService
	taskService      *services.TaskService
	nutritionService *services.NutritionService
	fitnessService   *services.FitnessService
	exportService    *services.ExportService

	foodResolver *nutrition.Resolver
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type recoverPasswordInput struct {
	RecoveryCode string `json:"recovery_code" form:"recovery_code"`
	NewPassword  string `json:"new_password" form:"new_password"`
}

type profileSetupInput struct {
	DisplayName string `json:"display_name" form:"display_name"`
	Timezone    string `json:"timezone" form:"timezone"`
}

type habitPayload struct {
	Name        string  `json:"name"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
}

type habitLogPayload struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type taskPayload struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	DueAt    string `json:"due_at"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

type mealPayload struct {
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type goalPayload struct {
	CaloriesTarget float64 `json:"calories_target"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	FiberG         float64 `json:"fiber_g"`
	WaterML        float64 `json:"water_ml"`
}

type pantryItemPayload struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
	ExpiresAt string  `json:"expires_at"`
}

type recipePayload struct {
	Name         string                    `json:"name"`
	Servings     int                       `json:"servings"`
	Ingredients  []recipeIngredientPayload `json:"ingredients"`
	Instructions string                    `json:"instructions"`
	Calories     float64                   `json:"calories"`
	ProteinG     float64                   `json:"protein_g"`
	CarbsG       float64                   `json:"carbs_g"`
	FatG         float64                   `json:"fat_g"`
}

type recipeIngredientPayload struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type exercisePayload struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
}

type routinePayload struct {
	Name      string                `json:"name"`
	DayOfWeek int                   `json:"day_of_week"`
	Entries   []routineEntryPayload `json:"entries"`
}

type routineEntryPayload struct {
	ExerciseID uint    `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKG   float64 `json:"weight_kg"`
}
