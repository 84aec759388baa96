package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/makerstech/storefront-backend/pkg/db/models"
	"github.com/makerstech/storefront-backend/pkg/enums"
)

// AllCategories is the sentinel that disables category filtering.
const AllCategories = "All"

// Service exposes the storefront catalog read model.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]ProductDTO, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, id int64) (*ProductDTO, error)
}

// ListProductsInput carries the parsed query parameters for a catalog read.
type ListProductsInput struct {
	Category string
	Sort     enums.SortKey
}

type service struct {
	repo ProductReader
}

// NewService constructs a catalog service instance.
func NewService(repo ProductReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

// ListProducts returns the catalog filtered by category and sorted by the
// requested key. The featured sort is a stable partition so same-flag items
// keep their catalog order.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) ([]ProductDTO, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if input.Category != "" && !strings.EqualFold(input.Category, AllCategories) {
		filtered := products[:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, input.Category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, input.Sort)
	return toProductDTOs(products), nil
}

// ListCategories returns the distinct categories prefixed with the sentinel.
func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	categories := []string{AllCategories}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// GetProduct loads a single product by id.
func (s *service) GetProduct(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toProductDTO(*product)
	return &dto, nil
}

func sortProducts(products []models.Product, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceOrZero().LessThan(products[j].PriceOrZero())
		})
	case enums.SortKeyPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceOrZero().GreaterThan(products[j].PriceOrZero())
		})
	case enums.SortKeyRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
