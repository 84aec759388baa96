package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/makerstech/storefront-backend/pkg/db/models"
	"github.com/makerstech/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Service exposes the admin inventory read model.
type Service interface {
	FilterProducts(ctx context.Context, filter FilterInput) ([]ItemDTO, error)
	Metrics(ctx context.Context) (*MetricsDTO, error)
}

// FilterInput mirrors the admin dashboard filter state. The zero value (empty
// search, "all" tiers) matches every product, so clearing filters is just a
// default-params request.
type FilterInput struct {
	SearchTerm string
	Stock      enums.StockFilter
	Price      enums.PriceBracket
}

type productLister interface {
	ListAll(ctx context.Context) ([]models.Product, error)
}

type service struct {
	repo productLister
}

// NewService constructs an inventory service instance.
func NewService(repo productLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

// FilterProducts applies the search, stock, and price predicates
// conjunctively. Predicates are independent, so application order never
// changes the result.
func (s *service) FilterProducts(ctx context.Context, filter FilterInput) ([]ItemDTO, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ItemDTO, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, filter.SearchTerm) {
			continue
		}
		if !filter.Stock.Matches(p.StockOrZero()) {
			continue
		}
		if !filter.Price.Matches(p.PriceOrZero()) {
			continue
		}
		items = append(items, toItemDTO(p))
	}
	return items, nil
}

// Metrics aggregates over the full, unfiltered product list.
func (s *service) Metrics(ctx context.Context) (*MetricsDTO, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totalStock := 0
	lowStock := 0
	totalValue := decimal.Zero
	for _, p := range products {
		stock := p.StockOrZero()
		totalStock += stock
		if stock > 0 && stock <= enums.LowStockThreshold {
			lowStock++
		}
		totalValue = totalValue.Add(p.PriceOrZero().Mul(decimal.NewFromInt(int64(stock))))
	}

	value, _ := totalValue.Float64()
	return &MetricsDTO{
		TotalProducts: len(products),
		TotalStock:    totalStock,
		TotalValue:    value,
		LowStockCount: lowStock,
	}, nil
}

func matchesSearch(p models.Product, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	lowered := strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), lowered) {
		return true
	}
	if strings.Contains(strconv.FormatInt(p.ID, 10), term) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), lowered) {
		return true
	}
	return false
}
