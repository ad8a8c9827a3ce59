package services

import (
	"errors"
	"time"

	"github.com/lifeos-dev/lifeos/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskStore interface {
	ListByUser(userID uint) ([]models.Task, error)
	ListByUserDueRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Task, error)
	FindByIDForUser(taskID uint, userID uint) (models.Task, error)
	Create(task *models.Task) error
	Save(task *models.Task) error
	Delete(task *models.Task) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (service *TaskService) ListTasks(userID uint) ([]models.Task, error) {
	return service.tasks.ListByUser(userID)
}

// CalendarTasks returns tasks due within [start, end] inclusive, ordered by
// due time ascending.
func (service *TaskService) CalendarTasks(userID uint, start time.Time, end time.Time, location *time.Location) ([]models.Task, error) {
	rangeStart, _ := DayRange(start, location)
	_, rangeEnd := DayRange(end, location)
	return service.tasks.ListByUserDueRange(userID, rangeStart, rangeEnd)
}

func (service *TaskService) CreateTask(task *models.Task) error {
	return service.tasks.Create(task)
}

func (service *TaskService) FindTask(taskID uint, userID uint) (models.Task, error) {
	task, err := service.tasks.FindByIDForUser(taskID, userID)
	if err != nil {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (service *TaskService) SaveTask(task *models.Task) error {
	return service.tasks.Save(task)
}

func (service *TaskService) DeleteTask(taskID uint, userID uint) error {
	task, err := service.tasks.FindByIDForUser(taskID, userID)
	if err != nil {
		return ErrTaskNotFound
	}
	return service.tasks.Delete(&task)
}
