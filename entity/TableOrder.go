package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine is one line of a running table order (or of a finalized
// invoice). Stored as JSON inside the owning row, the same way the POS
// keeps the whole line list together.
type OrderLine struct {
	MenuItemID    uint            `json:"menuItemId"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Department    string          `json:"department"`
	Quantity      int             `json:"quantity"`
	SentToKitchen bool            `json:"sentToKitchen"`
}

type TableOrder struct {
	gorm.Model
	TableID   uint        `gorm:"uniqueIndex" json:"tableId"`
	TableName string      `json:"tableName"`
	Items     []OrderLine `gorm:"serializer:json" json:"items"`
	StartTime time.Time   `json:"startTime"`
}
