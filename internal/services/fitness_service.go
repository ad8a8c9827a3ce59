package services

import (
	"errors"

	"github.com/lifeos-dev/lifeos/internal/models"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrUnknownExercise  = errors.New("routine references unknown exercise")
)

type FitnessStore interface {
	ListExercisesForUser(userID uint) ([]models.Exercise, error)
	FindExerciseForUser(exerciseID uint, userID uint) (models.Exercise, error)
	CountCatalogExercises() (int64, error)
	CreateExercises(exercises []models.Exercise) error
	CreateExercise(exercise *models.Exercise) error
	DeleteCustomExercise(exercise *models.Exercise) error
	ListRoutinesByUser(userID uint) ([]models.Routine, error)
	FindRoutineForUser(routineID uint, userID uint) (models.Routine, error)
	CreateRoutine(routine *models.Routine) error
	SaveRoutine(routine *models.Routine) error
	DeleteRoutine(routine *models.Routine) error
}

type FitnessService struct {
	store FitnessStore
}

func NewFitnessService(store FitnessStore) *FitnessService {
	return &FitnessService{store: store}
}

// EnsureCatalogSeeded inserts the shared exercise catalog on first boot.
func (service *FitnessService) EnsureCatalogSeeded() error {
	count, err := service.store.CountCatalogExercises()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := models.DefaultCatalogExercises()
	exercises := make([]models.Exercise, 0, len(catalog))
	for _, entry := range catalog {
		exercises = append(exercises, models.Exercise{
			Name:        entry.Name,
			MuscleGroup: entry.MuscleGroup,
			Equipment:   entry.Equipment,
			IsCustom:    false,
		})
	}
	return service.store.CreateExercises(exercises)
}

func (service *FitnessService) ListExercises(userID uint) ([]models.Exercise, error) {
	return service.store.ListExercisesForUser(userID)
}

func (service *FitnessService) CreateCustomExercise(exercise *models.Exercise) error {
	exercise.IsCustom = true
	return service.store.CreateExercise(exercise)
}

func (service *FitnessService) DeleteCustomExercise(exerciseID uint, userID uint) error {
	exercise, err := service.store.FindExerciseForUser(exerciseID, userID)
	if err != nil {
		return ErrExerciseNotFound
	}
	if !exercise.IsCustom || exercise.UserID != userID {
		return ErrExerciseNotFound
	}
	return service.store.DeleteCustomExercise(&exercise)
}

func (service *FitnessService) ListRoutines(userID uint) ([]models.Routine, error) {
	return service.store.ListRoutinesByUser(userID)
}

func (service *FitnessService) FindRoutine(routineID uint, userID uint) (models.Routine, error) {
	routine, err := service.store.FindRoutineForUser(routineID, userID)
	if err != nil {
		return models.Routine{}, ErrRoutineNotFound
	}
	return routine, nil
}

// SaveRoutineForUser validates that every referenced exercise is visible to
// the user (catalog or own custom) before writing.
func (service *FitnessService) SaveRoutineForUser(routine *models.Routine) error {
	for _, entry := range routine.Entries.Data() {
		if _, err := service.store.FindExerciseForUser(entry.ExerciseID, routine.UserID); err != nil {
			return ErrUnknownExercise
		}
	}

	if routine.ID == 0 {
		return service.store.CreateRoutine(routine)
	}
	return service.store.SaveRoutine(routine)
}

func (service *FitnessService) DeleteRoutine(routineID uint, userID uint) error {
	routine, err := service.store.FindRoutineForUser(routineID, userID)
	if err != nil {
		return ErrRoutineNotFound
	}
	return service.store.DeleteRoutine(&routine)
}
