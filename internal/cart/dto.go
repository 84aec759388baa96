package cart

import "github.com/shopspring/decimal"

// ItemDTO is one cart line as served to the storefront.
type ItemDTO struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// CartDTO is the full cart view with totals recomputed on every read.
type CartDTO struct {
	Items      []ItemDTO `json:"items"`
	TotalItems int       `json:"totalItems"`
	TotalValue float64   `json:"totalValue"`
}

func toCartDTO(lines []Line) CartDTO {
	items := make([]ItemDTO, 0, len(lines))
	totalItems := 0
	totalValue := decimal.Zero
	for _, line := range lines {
		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		price, _ := line.UnitPrice.Float64()
		total, _ := lineTotal.Float64()
		items = append(items, ItemDTO{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     price,
			Image:     line.Image,
			Quantity:  line.Quantity,
			LineTotal: total,
		})
		totalItems += line.Quantity
		totalValue = totalValue.Add(lineTotal)
	}
	value, _ := totalValue.Float64()
	return CartDTO{
		Items:      items,
		TotalItems: totalItems,
		TotalValue: value,
	}
}
