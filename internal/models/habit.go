package models

import "time"

type Habit struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"not null"`
	TargetValue float64 `gorm:"not null;default:1"`
	Unit        string  `gorm:"not null;default:''"`
	Color       string  `gorm:"not null;default:''"`
	Icon        string  `gorm:"not null;default:''"`
	IsActive    bool    `gorm:"not null;default:true"`
	// BestStreak is a watermark: it only ever grows, even when the visible
	// log window would compute a lower value.
	BestStreak int `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

type HabitLog struct {
	ID      uint      `gorm:"primaryKey"`
	HabitID uint      `gorm:"not null;uniqueIndex:uidx_habit_date"`
	UserID  uint      `gorm:"not null;index"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_date"`
	Value   float64   `gorm:"not null;default:0"`
}
