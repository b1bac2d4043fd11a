package entity

import (
	"gorm.io/gorm"
)

type Department struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
