package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey"`
	Email            string    `gorm:"uniqueIndex;not null"`
	PasswordHash     string    `gorm:"not null"`
	RecoveryCodeHash string    `gorm:"not null;default:''"`
	DisplayName      string    `gorm:"not null;default:''"`
	Timezone         string    `gorm:"not null;default:''"`
	ProfileCompleted bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null"`
}
