package db

import (
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
	"gorm.io/gorm"
)

type NutritionRepository struct {
	database *gorm.DB
}

func NewNutritionRepository(database *gorm.DB) *NutritionRepository {
	return &NutritionRepository{database: database}
}

func (repo *NutritionRepository) ListMealsByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *NutritionRepository) ListMealsByUser(userID uint) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *NutritionRepository) FindMealByIDForUser(mealID uint, userID uint) (models.Meal, error) {
	meal := models.Meal{}
	if err := repo.database.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error; err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func (repo *NutritionRepository) CreateMeal(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

func (repo *NutritionRepository) DeleteMeal(meal *models.Meal) error {
	return repo.database.Delete(meal).Error
}

// SetActiveGoal replaces the single active goal for a user. Deactivating
// the previous rows and inserting the new one run in one transaction, so
// concurrent submits settle on exactly one active row (last writer wins).
func (repo *NutritionRepository) SetActiveGoal(goal *models.NutritionGoal) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.NutritionGoal{}).
			Where("user_id = ? AND is_active = ?", goal.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		goal.IsActive = true
		return tx.Create(goal).Error
	})
}

func (repo *NutritionRepository) FindActiveGoal(userID uint) (models.NutritionGoal, bool, error) {
	goal := models.NutritionGoal{}
	result := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&goal)
	if result.Error != nil {
		return models.NutritionGoal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.NutritionGoal{}, false, nil
	}
	return goal, true, nil
}
