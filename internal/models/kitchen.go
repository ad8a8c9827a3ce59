package models

import (
	"time"

	"gorm.io/datatypes"
)

type PantryItem struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	Name      string  `gorm:"not null"`
	Quantity  float64 `gorm:"not null;default:0"`
	Unit      string  `gorm:"not null;default:''"`
	Category  string  `gorm:"not null;default:''"`
	ExpiresAt *time.Time
	CreatedAt time.Time
}

type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID           uint                                   `gorm:"primaryKey"`
	UserID       uint                                   `gorm:"not null;index"`
	Name         string                                 `gorm:"not null"`
	Servings     int                                    `gorm:"not null;default:1"`
	Ingredients  datatypes.JSONType[[]RecipeIngredient] `gorm:"not null"`
	Instructions string                                 `gorm:"not null;default:''"`
	Calories     float64                                `gorm:"not null;default:0"`
	ProteinG     float64                                `gorm:"not null;default:0"`
	CarbsG       float64                                `gorm:"not null;default:0"`
	FatG         float64                                `gorm:"not null;default:0"`
	CreatedAt    time.Time
}
