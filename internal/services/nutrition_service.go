package services

import (
	"errors"
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

var (
	ErrGoalSaveFailed = errors.New("save nutrition goal failed")
	ErrMealNotFound   = errors.New("meal not found")
)

type NutritionStore interface {
	ListMealsByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Meal, error)
	ListMealsByUser(userID uint) ([]models.Meal, error)
	FindMealByIDForUser(mealID uint, userID uint) (models.Meal, error)
	CreateMeal(meal *models.Meal) error
	DeleteMeal(meal *models.Meal) error
	SetActiveGoal(goal *models.NutritionGoal) error
	FindActiveGoal(userID uint) (models.NutritionGoal, bool, error)
}

type NutritionService struct {
	store NutritionStore
}

func NewNutritionService(store NutritionStore) *NutritionService {
	return &NutritionService{store: store}
}

type GoalInput struct {
	CaloriesTarget float64
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	FiberG         float64
	WaterML        float64
}

// ReplaceGoal makes the submitted goal the user's single active one.
func (service *NutritionService) ReplaceGoal(userID uint, input GoalInput, now time.Time) (models.NutritionGoal, error) {
	goal := models.NutritionGoal{
		UserID:         userID,
		CaloriesTarget: input.CaloriesTarget,
		ProteinG:       input.ProteinG,
		CarbsG:         input.CarbsG,
		FatG:           input.FatG,
		FiberG:         input.FiberG,
		WaterML:        input.WaterML,
		CreatedAt:      now,
	}
	if err := service.store.SetActiveGoal(&goal); err != nil {
		return models.NutritionGoal{}, ErrGoalSaveFailed
	}
	return goal, nil
}

func (service *NutritionService) ActiveGoal(userID uint) (models.NutritionGoal, bool, error) {
	return service.store.FindActiveGoal(userID)
}

func (service *NutritionService) AddMeal(meal *models.Meal) error {
	return service.store.CreateMeal(meal)
}

func (service *NutritionService) RemoveMeal(mealID uint, userID uint) error {
	meal, err := service.store.FindMealByIDForUser(mealID, userID)
	if err != nil {
		return ErrMealNotFound
	}
	return service.store.DeleteMeal(&meal)
}

func (service *NutritionService) ListMealsForDay(userID uint, day time.Time, location *time.Location) ([]models.Meal, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.store.ListMealsByUserRange(userID, dayStart, dayEnd)
}

// BuildHistory aggregates meal macros per calendar day over [start, end]
// inclusive, attaching the active goal's calorie target to every entry.
func (service *NutritionService) BuildHistory(userID uint, start time.Time, end time.Time, location *time.Location) ([]DailyNutritionTotals, error) {
	rangeStart, _ := DayRange(start, location)
	_, rangeEnd := DayRange(end, location)

	meals, err := service.store.ListMealsByUserRange(userID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	caloriesTarget := 0.0
	goal, found, err := service.store.FindActiveGoal(userID)
	if err != nil {
		return nil, err
	}
	if found {
		caloriesTarget = goal.CaloriesTarget
	}

	days := DaysBetween(start, end, location)
	return SumMealsByDay(days, meals, caloriesTarget, location), nil
}
