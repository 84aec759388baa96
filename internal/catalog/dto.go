package catalog

import (
	"github.com/makerstech/storefront-backend/pkg/db/models"
)

// ProductDTO is the storefront-facing product shape. Absent price and stock
// are normalized to zero so clients never see nulls.
type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
	Featured    bool    `json:"featured"`
}

func toProductDTO(p models.Product) ProductDTO {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}
	price, _ := p.PriceOrZero().Float64()
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: description,
		Price:       price,
		Stock:       p.StockOrZero(),
		Category:    p.Category,
		Rating:      p.Rating,
		Image:       p.Image,
		InStock:     p.InStock,
		Featured:    p.Featured,
	}
}

func toProductDTOs(products []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}
