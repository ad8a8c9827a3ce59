package db

import (
	"github.com/lifeos-dev/lifeos/internal/models"
	"gorm.io/gorm"
)

type FitnessRepository struct {
	database *gorm.DB
}

func NewFitnessRepository(database *gorm.DB) *FitnessRepository {
	return &FitnessRepository{database: database}
}

// ListExercisesForUser returns the shared catalog plus the user's own
// custom entries.
func (repo *FitnessRepository) ListExercisesForUser(userID uint) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("is_custom = ? OR user_id = ?", false, userID).
		Order("name ASC, id ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *FitnessRepository) FindExerciseForUser(exerciseID uint, userID uint) (models.Exercise, error) {
	exercise := models.Exercise{}
	if err := repo.database.
		Where("id = ? AND (is_custom = ? OR user_id = ?)", exerciseID, false, userID).
		First(&exercise).Error; err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (repo *FitnessRepository) CountCatalogExercises() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).
		Where("is_custom = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FitnessRepository) CreateExercises(exercises []models.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return repo.database.Create(&exercises).Error
}

func (repo *FitnessRepository) CreateExercise(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *FitnessRepository) DeleteCustomExercise(exercise *models.Exercise) error {
	return repo.database.
		Where("is_custom = ? AND user_id = ?", true, exercise.UserID).
		Delete(exercise).Error
}

func (repo *FitnessRepository) ListRoutinesByUser(userID uint) ([]models.Routine, error) {
	routines := make([]models.Routine, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("day_of_week ASC, id ASC").
		Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *FitnessRepository) FindRoutineForUser(routineID uint, userID uint) (models.Routine, error) {
	routine := models.Routine{}
	if err := repo.database.Where("id = ? AND user_id = ?", routineID, userID).First(&routine).Error; err != nil {
		return models.Routine{}, err
	}
	return routine, nil
}

func (repo *FitnessRepository) CreateRoutine(routine *models.Routine) error {
	return repo.database.Create(routine).Error
}

func (repo *FitnessRepository) SaveRoutine(routine *models.Routine) error {
	return repo.database.Save(routine).Error
}

func (repo *FitnessRepository) DeleteRoutine(routine *models.Routine) error {
	return repo.database.Delete(routine).Error
}
