package services

import (
	"errors"
	"testing"
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

type habitStoreStub struct {
	habits     map[uint]models.Habit
	logs       []models.HabitLog
	nextLogID  uint
	savedBests map[uint]int
	findErr    error
	logErr     error
}

func newHabitStoreStub() *habitStoreStub {
	return &habitStoreStub{
		habits:     make(map[uint]models.Habit),
		nextLogID:  1,
		savedBests: make(map[uint]int),
	}
}

func (stub *habitStoreStub) ListActiveByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for _, habit := range stub.habits {
		if habit.UserID == userID && habit.IsActive {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

func (stub *habitStoreStub) FindByIDForUser(habitID uint, userID uint) (models.Habit, error) {
	if stub.findErr != nil {
		return models.Habit{}, stub.findErr
	}
	habit, ok := stub.habits[habitID]
	if !ok || habit.UserID != userID {
		return models.Habit{}, errors.New("record not found")
	}
	return habit, nil
}

func (stub *habitStoreStub) Create(habit *models.Habit) error {
	stub.habits[habit.ID] = *habit
	return nil
}

func (stub *habitStoreStub) Save(habit *models.Habit) error {
	stub.habits[habit.ID] = *habit
	return nil
}

func (stub *habitStoreStub) Deactivate(habitID uint, userID uint) error {
	habit := stub.habits[habitID]
	habit.IsActive = false
	stub.habits[habitID] = habit
	return nil
}

func (stub *habitStoreStub) UpdateBestStreak(habitID uint, userID uint, bestStreak int) error {
	habit := stub.habits[habitID]
	habit.BestStreak = bestStreak
	stub.habits[habitID] = habit
	stub.savedBests[habitID] = bestStreak
	return nil
}

func (stub *habitStoreStub) ListLogsForRange(userID uint, habitIDs []uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	wanted := make(map[uint]bool, len(habitIDs))
	for _, habitID := range habitIDs {
		wanted[habitID] = true
	}

	logs := make([]models.HabitLog, 0)
	for _, entry := range stub.logs {
		if entry.UserID != userID || !wanted[entry.HabitID] {
			continue
		}
		if entry.Date.Before(fromStart) || !entry.Date.Before(toEnd) {
			continue
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

func (stub *habitStoreStub) FindLogByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.HabitLog, bool, error) {
	if stub.logErr != nil {
		return models.HabitLog{}, false, stub.logErr
	}
	for _, entry := range stub.logs {
		if entry.HabitID != habitID {
			continue
		}
		if entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
			continue
		}
		return entry, true, nil
	}
	return models.HabitLog{}, false, nil
}

func (stub *habitStoreStub) CreateLog(entry *models.HabitLog) error {
	if stub.logErr != nil {
		return stub.logErr
	}
	entry.ID = stub.nextLogID
	stub.nextLogID++
	stub.logs = append(stub.logs, *entry)
	return nil
}

func (stub *habitStoreStub) SaveLog(entry *models.HabitLog) error {
	for index := range stub.logs {
		if stub.logs[index].ID == entry.ID {
			stub.logs[index] = *entry
			return nil
		}
	}
	return errors.New("log not found")
}

func TestUpsertLogCreatesThenOverwrites(t *testing.T) {
	stub := newHabitStoreStub()
	stub.habits[1] = models.Habit{ID: 1, UserID: 7, Name: "Water", TargetValue: 8, IsActive: true}
	service := NewHabitService(stub)

	day := time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC)
	first, err := service.UpsertLog(1, 7, day, 5, time.UTC)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.Value != 5 {
		t.Fatalf("expected value 5, got %v", first.Value)
	}

	// Logging again the same day must overwrite, not duplicate.
	second, err := service.UpsertLog(1, 7, day.Add(4*time.Hour), 9, time.UTC)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same log row, got IDs %d and %d", first.ID, second.ID)
	}
	if len(stub.logs) != 1 {
		t.Fatalf("expected a single log row, got %d", len(stub.logs))
	}
	if stub.logs[0].Value != 9 {
		t.Fatalf("expected stored value 9, got %v", stub.logs[0].Value)
	}
}

func TestUpsertLogUnknownHabit(t *testing.T) {
	service := NewHabitService(newHabitStoreStub())
	_, err := service.UpsertLog(99, 7, time.Now(), 1, time.UTC)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestUpsertLogScopedToOwner(t *testing.T) {
	stub := newHabitStoreStub()
	stub.habits[1] = models.Habit{ID: 1, UserID: 7, IsActive: true}
	service := NewHabitService(stub)

	_, err := service.UpsertLog(1, 8, time.Now(), 1, time.UTC)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound for foreign habit, got %v", err)
	}
}

func TestBuildStatsFillsMissingDaysAsZero(t *testing.T) {
	location := time.UTC
	stub := newHabitStoreStub()
	stub.habits[1] = models.Habit{ID: 1, UserID: 7, Name: "Read", TargetValue: 1, IsActive: true}
	service := NewHabitService(stub)

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, location)
	today := DateAtLocation(now, location)

	// Logs on today and two days ago; yesterday is missing.
	stub.logs = []models.HabitLog{
		{ID: 1, HabitID: 1, UserID: 7, Date: today.AddDate(0, 0, -2), Value: 1},
		{ID: 2, HabitID: 1, UserID: 7, Date: today, Value: 1},
	}

	stats, err := service.BuildStats(7, 7, now, location)
	if err != nil {
		t.Fatalf("BuildStats failed: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected stats for one habit, got %d", len(stats))
	}

	habitStats := stats[0]
	if len(habitStats.Logs) != 7 {
		t.Fatalf("expected 7 log points, got %d", len(habitStats.Logs))
	}
	if habitStats.CurrentStreak != 1 {
		t.Fatalf("expected current streak 1 after missed day, got %d", habitStats.CurrentStreak)
	}
	if habitStats.TotalCompletions != 2 {
		t.Fatalf("expected 2 completions, got %d", habitStats.TotalCompletions)
	}
	if habitStats.CompletionRate != 29 {
		t.Fatalf("expected completion rate 29, got %d", habitStats.CompletionRate)
	}
}

func TestBuildStatsAdvancesBestStreakWatermark(t *testing.T) {
	location := time.UTC
	stub := newHabitStoreStub()
	stub.habits[1] = models.Habit{ID: 1, UserID: 7, Name: "Run", TargetValue: 1, BestStreak: 2, IsActive: true}
	service := NewHabitService(stub)

	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, location)
	today := DateAtLocation(now, location)
	for offset := 0; offset < 4; offset++ {
		stub.logs = append(stub.logs, models.HabitLog{
			ID:      uint(offset + 1),
			HabitID: 1,
			UserID:  7,
			Date:    today.AddDate(0, 0, -offset),
			Value:   1,
		})
	}

	stats, err := service.BuildStats(7, 7, now, location)
	if err != nil {
		t.Fatalf("BuildStats failed: %v", err)
	}
	if stats[0].BestStreak != 4 {
		t.Fatalf("expected best streak 4, got %d", stats[0].BestStreak)
	}
	if stub.savedBests[1] != 4 {
		t.Fatalf("expected watermark persisted as 4, got %d", stub.savedBests[1])
	}
}

func TestBuildStatsKeepsStoredBestWhenWindowIsWorse(t *testing.T) {
	location := time.UTC
	stub := newHabitStoreStub()
	stub.habits[1] = models.Habit{ID: 1, UserID: 7, Name: "Run", TargetValue: 1, BestStreak: 10, IsActive: true}
	service := NewHabitService(stub)

	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, location)
	stub.logs = []models.HabitLog{
		{ID: 1, HabitID: 1, UserID: 7, Date: DateAtLocation(now, location), Value: 1},
	}

	stats, err := service.BuildStats(7, 7, now, location)
	if err != nil {
		t.Fatalf("BuildStats failed: %v", err)
	}
	if stats[0].BestStreak != 10 {
		t.Fatalf("expected stored best 10 preserved, got %d", stats[0].BestStreak)
	}
	if _, saved := stub.savedBests[1]; saved {
		t.Fatalf("expected no watermark write when window best is lower")
	}
}

func TestBuildStatsNoHabits(t *testing.T) {
	service := NewHabitService(newHabitStoreStub())
	stats, err := service.BuildStats(7, 30, time.Now(), time.UTC)
	if err != nil {
		t.Fatalf("BuildStats failed: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected empty stats, got %d entries", len(stats))
	}
}
