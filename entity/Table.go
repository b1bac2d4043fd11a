package entity

import (
	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
)

type Table struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name" binding:"required"`
	Seats    int    `json:"seats"`
	Category string `json:"category"`
	Status   string `gorm:"not null;default:available" json:"status"`
}
