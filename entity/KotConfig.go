package entity

import (
	"gorm.io/gorm"
)

// KotConfig is a singleton row: kitchen-order-ticket printing options.
type KotConfig struct {
	gorm.Model
	PrintByDepartment bool `json:"printByDepartment"`
	NumberOfCopies    int  `gorm:"default:1" json:"numberOfCopies"`
}
