package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

type taskStoreStub struct {
	tasks  map[uint]models.Task
	nextID uint
}

func newTaskStoreStub() *taskStoreStub {
	return &taskStoreStub{tasks: make(map[uint]models.Task), nextID: 1}
}

func (stub *taskStoreStub) ListByUser(userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for _, task := range stub.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (stub *taskStoreStub) ListByUserDueRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for _, task := range stub.tasks {
		if task.UserID != userID || task.DueAt == nil {
			continue
		}
		if task.DueAt.Before(fromStart) || !task.DueAt.Before(toEnd) {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].DueAt.Before(*tasks[j].DueAt) })
	return tasks, nil
}

func (stub *taskStoreStub) FindByIDForUser(taskID uint, userID uint) (models.Task, error) {
	task, ok := stub.tasks[taskID]
	if !ok || task.UserID != userID {
		return models.Task{}, errors.New("record not found")
	}
	return task, nil
}

func (stub *taskStoreStub) Create(task *models.Task) error {
	task.ID = stub.nextID
	stub.nextID++
	stub.tasks[task.ID] = *task
	return nil
}

func (stub *taskStoreStub) Save(task *models.Task) error {
	stub.tasks[task.ID] = *task
	return nil
}

func (stub *taskStoreStub) Delete(task *models.Task) error {
	delete(stub.tasks, task.ID)
	return nil
}

func TestCalendarTasksInclusiveBounds(t *testing.T) {
	location := time.UTC
	stub := newTaskStoreStub()
	service := NewTaskService(stub)

	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, location)
	end := time.Date(2025, time.April, 3, 0, 0, 0, 0, location)

	dueAt := func(day time.Time) *time.Time { return &day }
	lateOnLastDay := end.Add(23 * time.Hour)
	beforeRange := start.AddDate(0, 0, -1)
	afterRange := end.AddDate(0, 0, 1)

	for _, task := range []models.Task{
		{UserID: 7, Title: "first day", DueAt: dueAt(start)},
		{UserID: 7, Title: "last day evening", DueAt: &lateOnLastDay},
		{UserID: 7, Title: "too early", DueAt: &beforeRange},
		{UserID: 7, Title: "too late", DueAt: &afterRange},
		{UserID: 7, Title: "no due date"},
		{UserID: 8, Title: "other user", DueAt: dueAt(start)},
	} {
		taskCopy := task
		if err := service.CreateTask(&taskCopy); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	tasks, err := service.CalendarTasks(7, start, end, location)
	if err != nil {
		t.Fatalf("CalendarTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks in range, got %d", len(tasks))
	}
	if tasks[0].Title != "first day" || tasks[1].Title != "last day evening" {
		t.Fatalf("unexpected ordering: %q then %q", tasks[0].Title, tasks[1].Title)
	}
}

func TestDeleteTaskScopedToOwner(t *testing.T) {
	stub := newTaskStoreStub()
	service := NewTaskService(stub)

	task := models.Task{UserID: 7, Title: "laundry"}
	if err := service.CreateTask(&task); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.DeleteTask(task.ID, 8); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign task, got %v", err)
	}
	if err := service.DeleteTask(task.ID, 7); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(stub.tasks) != 0 {
		t.Fatalf("expected task removed, got %d rows", len(stub.tasks))
	}
}

func TestFindTaskMapsMissingToNotFound(t *testing.T) {
	service := NewTaskService(newTaskStoreStub())
	if _, err := service.FindTask(42, 7); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
