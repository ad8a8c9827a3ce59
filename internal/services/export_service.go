package services

import (
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportHabitCSVHeaders = []string{"Date", "Habit", "Value", "Unit", "Target", "Completed"}

type ExportHabitReader interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
	ListLogsForRange(userID uint, habitIDs []uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error)
}

type ExportMealReader interface {
	ListMealsByUser(userID uint) ([]models.Meal, error)
}

type ExportService struct {
	habits ExportHabitReader
	meals  ExportMealReader
}

func NewExportService(habits ExportHabitReader, meals ExportMealReader) *ExportService {
	return &ExportService{habits: habits, meals: meals}
}

type ExportSummary struct {
	TotalHabitLogs int    `json:"total_habit_logs"`
	TotalMeals     int    `json:"total_meals"`
	HasData        bool   `json:"has_data"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
}

type ExportHabitEntry struct {
	Habit       string          `json:"habit"`
	Unit        string          `json:"unit"`
	TargetValue float64         `json:"target_value"`
	Logs        []HabitLogPoint `json:"logs"`
}

type ExportMealEntry struct {
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	MealType string  `json:"meal_type"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type ExportData struct {
	Habits []ExportHabitEntry `json:"habits"`
	Meals  []ExportMealEntry  `json:"meals"`
}

type ExportHabitCSVRow struct {
	Date      string
	Habit     string
	Value     float64
	Unit      string
	Target    float64
	Completed bool
}

func (service *ExportService) loadHabitLogs(userID uint, location *time.Location) ([]models.Habit, []models.HabitLog, error) {
	habits, err := service.habits.ListActiveByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(habits) == 0 {
		return habits, nil, nil
	}

	habitIDs := make([]uint, 0, len(habits))
	for _, habit := range habits {
		habitIDs = append(habitIDs, habit.ID)
	}

	// The whole history: an arbitrarily wide range keeps the repository
	// contract uniform.
	fromStart := time.Date(1970, time.January, 1, 0, 0, 0, 0, location)
	toEnd := DateAtLocation(time.Now(), location).AddDate(0, 0, 1)
	logs, err := service.habits.ListLogsForRange(userID, habitIDs, fromStart, toEnd)
	if err != nil {
		return nil, nil, err
	}
	return habits, logs, nil
}

func (service *ExportService) BuildSummary(userID uint, location *time.Location) (ExportSummary, error) {
	_, logs, err := service.loadHabitLogs(userID, location)
	if err != nil {
		return ExportSummary{}, err
	}

	meals, err := service.meals.ListMealsByUser(userID)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{
		TotalHabitLogs: len(logs),
		TotalMeals:     len(meals),
	}
	if len(logs) == 0 && len(meals) == 0 {
		return summary, nil
	}
	summary.HasData = true

	var first, last time.Time
	observe := func(day time.Time) {
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	for _, logEntry := range logs {
		observe(logEntry.Date)
	}
	for _, meal := range meals {
		observe(meal.Date)
	}

	summary.DateFrom = DateAtLocation(first, location).Format(exportDateLayout)
	summary.DateTo = DateAtLocation(last, location).Format(exportDateLayout)
	return summary, nil
}

func (service *ExportService) BuildData(userID uint, location *time.Location) (ExportData, error) {
	habits, logs, err := service.loadHabitLogs(userID, location)
	if err != nil {
		return ExportData{}, err
	}

	logsByHabit := make(map[uint][]HabitLogPoint, len(habits))
	for _, logEntry := range logs {
		logsByHabit[logEntry.HabitID] = append(logsByHabit[logEntry.HabitID], HabitLogPoint{
			Date:  DateAtLocation(logEntry.Date, location).Format(exportDateLayout),
			Value: logEntry.Value,
		})
	}

	habitEntries := make([]ExportHabitEntry, 0, len(habits))
	for _, habit := range habits {
		points := logsByHabit[habit.ID]
		if points == nil {
			points = []HabitLogPoint{}
		}
		habitEntries = append(habitEntries, ExportHabitEntry{
			Habit:       habit.Name,
			Unit:        habit.Unit,
			TargetValue: habit.TargetValue,
			Logs:        points,
		})
	}

	meals, err := service.meals.ListMealsByUser(userID)
	if err != nil {
		return ExportData{}, err
	}

	mealEntries := make([]ExportMealEntry, 0, len(meals))
	for _, meal := range meals {
		mealEntries = append(mealEntries, ExportMealEntry{
			Date:     DateAtLocation(meal.Date, location).Format(exportDateLayout),
			Name:     meal.Name,
			MealType: meal.MealType,
			Calories: meal.Calories,
			ProteinG: meal.ProteinG,
			CarbsG:   meal.CarbsG,
			FatG:     meal.FatG,
		})
	}

	return ExportData{Habits: habitEntries, Meals: mealEntries}, nil
}

func (service *ExportService) BuildHabitCSVRows(userID uint, location *time.Location) ([]ExportHabitCSVRow, error) {
	habits, logs, err := service.loadHabitLogs(userID, location)
	if err != nil {
		return nil, err
	}

	habitsByID := make(map[uint]models.Habit, len(habits))
	for _, habit := range habits {
		habitsByID[habit.ID] = habit
	}

	rows := make([]ExportHabitCSVRow, 0, len(logs))
	for _, logEntry := range logs {
		habit, ok := habitsByID[logEntry.HabitID]
		if !ok {
			continue
		}
		rows = append(rows, ExportHabitCSVRow{
			Date:      DateAtLocation(logEntry.Date, location).Format(exportDateLayout),
			Habit:     habit.Name,
			Value:     logEntry.Value,
			Unit:      habit.Unit,
			Target:    habit.TargetValue,
			Completed: logEntry.Value >= habit.TargetValue,
		})
	}
	return rows, nil
}
