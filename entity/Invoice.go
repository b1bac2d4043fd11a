package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
)

type Invoice struct {
	gorm.Model
	BillNumber string          `gorm:"not null" json:"billNumber" binding:"required"`
	OrderType  string          `gorm:"not null" json:"orderType"`
	TableName  string          `json:"tableName"`
	Items      []OrderLine     `gorm:"serializer:json" json:"items"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax        decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Timestamp  time.Time       `json:"timestamp"`
}
