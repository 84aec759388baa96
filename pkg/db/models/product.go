package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents one catalog row. The storefront never mutates products;
// they are seeded by migrations and owned by the managed datastore.
type Product struct {
	ID          int64               `gorm:"column:id;primaryKey" json:"id"`
	Name        string              `gorm:"column:name;not null" json:"name"`
	Description *string             `gorm:"column:description" json:"description"`
	Price       decimal.NullDecimal `gorm:"column:price;type:numeric(12,2)" json:"price"`
	Stock       *int                `gorm:"column:stock" json:"stock"`
	Category    string              `gorm:"column:category;not null" json:"category"`
	Rating      float64             `gorm:"column:rating;not null;default:0" json:"rating"`
	Image       string              `gorm:"column:image;not null;default:''" json:"image"`
	InStock     bool                `gorm:"column:in_stock;not null;default:true" json:"in_stock"`
	Featured    bool                `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name used by the managed datastore.
func (Product) TableName() string {
	return "products"
}

// PriceOrZero normalizes an unset price to zero. Every predicate and
// aggregate goes through this accessor so absence is handled in one place.
func (p Product) PriceOrZero() decimal.Decimal {
	if !p.Price.Valid {
		return decimal.Zero
	}
	return p.Price.Decimal
}

// StockOrZero normalizes an unset stock level to zero.
func (p Product) StockOrZero() int {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}
