package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuGroup classifies menus (e.g. "Set menus", "Sides").
type MenuGroup struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Menu is a sellable composition of products. Its lines are written and read
// explicitly by the catalog service, never through GORM associations. Price
// is stored as text, like Product.Price.
type Menu struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:text;not null"`
	MenuGroupID  uint            `json:"menu_group_id" gorm:"not null;index"`
	MenuProducts []MenuProduct   `json:"menu_products" gorm:"-"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MenuProduct is one composition line of a menu.
type MenuProduct struct {
	ID        uint  `json:"id" gorm:"primaryKey"`
	MenuID    uint  `json:"menu_id" gorm:"not null;index"`
	ProductID uint  `json:"product_id" gorm:"not null"`
	Quantity  int64 `json:"quantity" gorm:"not null"`
}
