package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a priced item that menus are composed from. Price is stored as
// text so SQLite keeps every digit.
type Product struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:text;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
