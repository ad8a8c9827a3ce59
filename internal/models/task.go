package models

import "time"

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

const (
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
)

type Task struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;index"`
	Title     string     `gorm:"not null"`
	Notes     string     `gorm:"not null;default:''"`
	DueAt     *time.Time `gorm:"index"`
	Priority  string     `gorm:"not null;default:medium"`
	Status    string     `gorm:"not null;default:pending"`
	Category  string     `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func ValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

func ValidTaskStatus(status string) bool {
	return status == TaskStatusPending || status == TaskStatusDone
}
