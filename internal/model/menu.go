package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory groups menu items (cocktails, spirits, food...).
type MenuCategory struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	VenueID   uint       `json:"-" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Position  int        `json:"position" gorm:"not null;default:0"`
	Items     []MenuItem `json:"items" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// MenuItem is one orderable entry of the catalog.
type MenuItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Name        string          `json:"name" gorm:"size:150;not null"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Position    int             `json:"position" gorm:"not null;default:0"`
	Available   bool            `json:"available" gorm:"not null"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}
