package inventory

import "github.com/makerstech/storefront-backend/pkg/db/models"

// ItemDTO is one inventory row as served to the admin dashboard.
type ItemDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Featured    bool    `json:"featured"`
}

// MetricsDTO aggregates the unfiltered inventory.
type MetricsDTO struct {
	TotalProducts int     `json:"totalProducts"`
	TotalStock    int     `json:"totalStock"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int     `json:"lowStockCount"`
}

func toItemDTO(p models.Product) ItemDTO {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}
	price, _ := p.PriceOrZero().Float64()
	return ItemDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: description,
		Price:       price,
		Stock:       p.StockOrZero(),
		Category:    p.Category,
		InStock:     p.InStock,
		Featured:    p.Featured,
	}
}
