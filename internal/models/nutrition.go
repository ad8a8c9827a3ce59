package models

import "time"

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

type Meal struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null;index"`
	MealType  string    `gorm:"not null;default:snack"`
	Calories  float64   `gorm:"not null;default:0"`
	ProteinG  float64   `gorm:"not null;default:0"`
	CarbsG    float64   `gorm:"not null;default:0"`
	FatG      float64   `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// NutritionGoal rows are versioned by activation: at most one row per user
// carries is_active=true, enforced by NutritionRepository.SetActiveGoal.
type NutritionGoal struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"not null;index"`
	CaloriesTarget float64 `gorm:"not null;default:0"`
	ProteinG       float64 `gorm:"not null;default:0"`
	CarbsG         float64 `gorm:"not null;default:0"`
	FatG           float64 `gorm:"not null;default:0"`
	FiberG         float64 `gorm:"not null;default:0"`
	WaterML        float64 `gorm:"not null;default:0"`
	IsActive       bool    `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
}

func ValidMealType(mealType string) bool {
	switch mealType {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
