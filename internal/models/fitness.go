package models

import (
	"time"

	"gorm.io/datatypes"
)

// Exercise is either a shared catalog entry (UserID 0, IsCustom false) or a
// user-owned custom entry. Listing uses the OR filter in FitnessRepository.
type Exercise struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;default:0;index"`
	Name        string `gorm:"not null"`
	MuscleGroup string `gorm:"not null;default:''"`
	Equipment   string `gorm:"not null;default:''"`
	IsCustom    bool   `gorm:"not null;default:false"`
}

type RoutineEntry struct {
	ExerciseID uint    `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKG   float64 `json:"weight_kg"`
}

type Routine struct {
	ID        uint                               `gorm:"primaryKey"`
	UserID    uint                               `gorm:"not null;index"`
	Name      string                             `gorm:"not null"`
	DayOfWeek int                                `gorm:"not null;default:0"`
	Entries   datatypes.JSONType[[]RoutineEntry] `gorm:"not null"`
	CreatedAt time.Time
}

type CatalogExercise struct {
	Name        string
	MuscleGroup string
	Equipment   string
}

func DefaultCatalogExercises() []CatalogExercise {
	return []CatalogExercise{
		{Name: "Squat", MuscleGroup: "legs", Equipment: "barbell"},
		{Name: "Deadlift", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Bench Press", MuscleGroup: "chest", Equipment: "barbell"},
		{Name: "Overhead Press", MuscleGroup: "shoulders", Equipment: "barbell"},
		{Name: "Pull-up", MuscleGroup: "back", Equipment: "bodyweight"},
		{Name: "Push-up", MuscleGroup: "chest", Equipment: "bodyweight"},
		{Name: "Plank", MuscleGroup: "core", Equipment: "bodyweight"},
		{Name: "Lunge", MuscleGroup: "legs", Equipment: "dumbbell"},
		{Name: "Bicep Curl", MuscleGroup: "arms", Equipment: "dumbbell"},
		{Name: "Lateral Raise", MuscleGroup: "shoulders", Equipment: "dumbbell"},
		{Name: "Romanian Deadlift", MuscleGroup: "legs", Equipment: "barbell"},
		{Name: "Barbell Row", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Running", MuscleGroup: "cardio", Equipment: "none"},
		{Name: "Cycling", MuscleGroup: "cardio", Equipment: "machine"},
		{Name: "Rowing", MuscleGroup: "cardio", Equipment: "machine"},
	}
}
