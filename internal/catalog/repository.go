package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/makerstech/storefront-backend/pkg/db/models"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// ProductReader defines the read-only persistence surface for products.
type ProductReader interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

// Repository loads products from the managed datastore.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every product ordered by id.
func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, fmt.Errorf("loading product %d: %w", id, err)
	}
	return &product, nil
}
