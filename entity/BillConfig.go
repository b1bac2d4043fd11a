package entity

import (
	"gorm.io/gorm"
)

// BillConfig is a singleton row: bill auto-print options.
type BillConfig struct {
	gorm.Model
	AutoPrintDineIn   bool `json:"autoPrintDineIn"`
	AutoPrintTakeaway bool `json:"autoPrintTakeaway"`
}
