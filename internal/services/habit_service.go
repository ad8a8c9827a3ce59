package services

import (
	"errors"
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitLoadFailed    = errors.New("load habit failed")
	ErrHabitSaveFailed    = errors.New("save habit failed")
	ErrHabitLogSaveFailed = errors.New("save habit log failed")
)

type HabitStore interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	Deactivate(habitID uint, userID uint) error
	UpdateBestStreak(habitID uint, userID uint, bestStreak int) error
	ListLogsForRange(userID uint, habitIDs []uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error)
	FindLogByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.HabitLog, bool, error)
	CreateLog(entry *models.HabitLog) error
	SaveLog(entry *models.HabitLog) error
}

type HabitService struct {
	habits HabitStore
}

func NewHabitService(habits HabitStore) *HabitService {
	return &HabitService{habits: habits}
}

type HabitLogPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type HabitStats struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Icon             string          `json:"icon"`
	TargetValue      float64         `json:"target_value"`
	CurrentStreak    int             `json:"current_streak"`
	BestStreak       int             `json:"best_streak"`
	CompletionRate   int             `json:"completion_rate"`
	TotalCompletions int             `json:"total_completions"`
	Logs             []HabitLogPoint `json:"logs"`
}

func (service *HabitService) ListHabits(userID uint) ([]models.Habit, error) {
	return service.habits.ListActiveByUser(userID)
}

func (service *HabitService) CreateHabit(habit *models.Habit) error {
	return service.habits.Create(habit)
}

func (service *HabitService) FindHabit(habitID uint, userID uint) (models.Habit, error) {
	return service.habits.FindByIDForUser(habitID, userID)
}

func (service *HabitService) SaveHabit(habit *models.Habit) error {
	return service.habits.Save(habit)
}

func (service *HabitService) DeactivateHabit(habitID uint, userID uint) error {
	if _, err := service.habits.FindByIDForUser(habitID, userID); err != nil {
		return ErrHabitNotFound
	}
	return service.habits.Deactivate(habitID, userID)
}

// UpsertLog writes the value for one (habit, day); logging again for the
// same day overwrites instead of creating a duplicate.
func (service *HabitService) UpsertLog(habitID uint, userID uint, day time.Time, value float64, location *time.Location) (models.HabitLog, error) {
	if _, err := service.habits.FindByIDForUser(habitID, userID); err != nil {
		return models.HabitLog{}, ErrHabitNotFound
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.habits.FindLogByHabitAndDayRange(habitID, dayStart, dayEnd)
	if err != nil {
		return models.HabitLog{}, ErrHabitLoadFailed
	}

	if found {
		entry.Value = value
		if err := service.habits.SaveLog(&entry); err != nil {
			return models.HabitLog{}, ErrHabitLogSaveFailed
		}
		return entry, nil
	}

	entry = models.HabitLog{
		HabitID: habitID,
		UserID:  userID,
		Date:    dayStart,
		Value:   value,
	}
	if err := service.habits.CreateLog(&entry); err != nil {
		return models.HabitLog{}, ErrHabitLogSaveFailed
	}
	return entry, nil
}

// BuildStats computes per-habit streaks and completion rates over a window
// of windowDays ending today. When a computed best streak passes the stored
// watermark, the watermark is advanced so it never decreases as the window
// slides.
func (service *HabitService) BuildStats(userID uint, windowDays int, now time.Time, location *time.Location) ([]HabitStats, error) {
	habits, err := service.habits.ListActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return []HabitStats{}, nil
	}

	today := DateAtLocation(now, location)
	windowStart := today.AddDate(0, 0, -(windowDays - 1))
	windowEnd := today.AddDate(0, 0, 1)

	habitIDs := make([]uint, 0, len(habits))
	for _, habit := range habits {
		habitIDs = append(habitIDs, habit.ID)
	}

	logs, err := service.habits.ListLogsForRange(userID, habitIDs, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	valuesByHabitDay := make(map[uint]map[string]float64, len(habits))
	for _, logEntry := range logs {
		key := DayKey(logEntry.Date, location)
		if valuesByHabitDay[logEntry.HabitID] == nil {
			valuesByHabitDay[logEntry.HabitID] = make(map[string]float64)
		}
		valuesByHabitDay[logEntry.HabitID][key] = logEntry.Value
	}

	windowDates := DaysBetween(windowStart, today, location)

	stats := make([]HabitStats, 0, len(habits))
	for _, habit := range habits {
		values := make([]float64, 0, len(windowDates))
		points := make([]HabitLogPoint, 0, len(windowDates))
		for _, day := range windowDates {
			key := day.Format(dayLayout)
			value := valuesByHabitDay[habit.ID][key]
			values = append(values, value)
			points = append(points, HabitLogPoint{Date: key, Value: value})
		}

		streaks := CalculateHabitStreaks(values, habit.TargetValue, habit.BestStreak)
		if streaks.Best > habit.BestStreak {
			if err := service.habits.UpdateBestStreak(habit.ID, userID, streaks.Best); err != nil {
				return nil, err
			}
		}

		stats = append(stats, HabitStats{
			ID:               habit.ID,
			Name:             habit.Name,
			Color:            habit.Color,
			Icon:             habit.Icon,
			TargetValue:      habit.TargetValue,
			CurrentStreak:    streaks.Current,
			BestStreak:       streaks.Best,
			CompletionRate:   streaks.CompletionRate,
			TotalCompletions: streaks.TotalCompletions,
			Logs:             points,
		})
	}

	return stats, nil
}
