package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Habits    *HabitRepository
	Tasks     *TaskRepository
	Nutrition *NutritionRepository
	Kitchen   *KitchenRepository
	Fitness   *FitnessRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Habits:    NewHabitRepository(database),
		Tasks:     NewTaskRepository(database),
		Nutrition: NewNutritionRepository(database),
		Kitchen:   NewKitchenRepository(database),
		Fitness:   NewFitnessRepository(database),
	}
}
