package db

import (
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListActiveByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, error) {
	habit := models.Habit{}
	if err := repo.database.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

// Deactivate performs the logical delete; habit rows are never removed so
// their logs keep their history.
func (repo *HabitRepository) Deactivate(habitID uint, userID uint) error {
	return repo.database.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", habitID, userID).
		Update("is_active", false).Error
}

func (repo *HabitRepository) UpdateBestStreak(habitID uint, userID uint, bestStreak int) error {
	return repo.database.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", habitID, userID).
		Update("best_streak", bestStreak).Error
}

func (repo *HabitRepository) ListLogsForRange(userID uint, habitIDs []uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if len(habitIDs) == 0 {
		return logs, nil
	}
	if err := repo.database.
		Where("user_id = ? AND habit_id IN ? AND date >= ? AND date < ?", userID, habitIDs, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitRepository) FindLogByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.HabitLog, bool, error) {
	entry := models.HabitLog{}
	result := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.HabitLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *HabitRepository) CreateLog(entry *models.HabitLog) error {
	return repo.database.Create(entry).Error
}

func (repo *HabitRepository) SaveLog(entry *models.HabitLog) error {
	return repo.database.Save(entry).Error
}
