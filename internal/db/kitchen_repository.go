package db

import (
	"github.com/lifeos-dev/lifeos/internal/models"
	"gorm.io/gorm"
)

type KitchenRepository struct {
	database *gorm.DB
}

func NewKitchenRepository(database *gorm.DB) *KitchenRepository {
	return &KitchenRepository{database: database}
}

func (repo *KitchenRepository) ListPantryByUser(userID uint) ([]models.PantryItem, error) {
	items := make([]models.PantryItem, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("category ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *KitchenRepository) FindPantryItemForUser(itemID uint, userID uint) (models.PantryItem, error) {
	item := models.PantryItem{}
	if err := repo.database.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return models.PantryItem{}, err
	}
	return item, nil
}

func (repo *KitchenRepository) CreatePantryItem(item *models.PantryItem) error {
	return repo.database.Create(item).Error
}

func (repo *KitchenRepository) SavePantryItem(item *models.PantryItem) error {
	return repo.database.Save(item).Error
}

func (repo *KitchenRepository) DeletePantryItem(item *models.PantryItem) error {
	return repo.database.Delete(item).Error
}

func (repo *KitchenRepository) ListRecipesByUser(userID uint) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *KitchenRepository) FindRecipeForUser(recipeID uint, userID uint) (models.Recipe, error) {
	recipe := models.Recipe{}
	if err := repo.database.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (repo *KitchenRepository) CreateRecipe(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}

func (repo *KitchenRepository) SaveRecipe(recipe *models.Recipe) error {
	return repo.database.Save(recipe).Error
}

func (repo *KitchenRepository) DeleteRecipe(recipe *models.Recipe) error {
	return repo.database.Delete(recipe).Error
}
