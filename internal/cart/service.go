package cart

import (
	"context"
	"fmt"

	"github.com/makerstech/storefront-backend/pkg/db/models"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

// Service exposes session-scoped cart operations.
type Service interface {
	AddToCart(ctx context.Context, sessionID string, productID int64) (*CartDTO, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartDTO, error)
	ClearCart(ctx context.Context, sessionID string) error
	GetCart(ctx context.Context, sessionID string) (*CartDTO, error)
}

type productLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

type service struct {
	store    *Store
	products productLoader
	logg     *logger.Logger
}

// NewService constructs a cart service instance.
func NewService(store *Store, products productLoader, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, products: products, logg: logg}, nil
}

// AddToCart looks the product up and merges it into the cart. Repeat adds of
// the same product increment quantity instead of creating a second line. An
// unknown product id is a silent no-op.
func (s *service) AddToCart(ctx context.Context, sessionID string, productID int64) (*CartDTO, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
			s.logg.Warn(s.logg.WithField(ctx, "product_id", productID), "add to cart ignored unknown product")
			return s.GetCart(ctx, sessionID)
		}
		return nil, err
	}

	s.store.Upsert(sessionID, Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.PriceOrZero(),
		Image:     product.Image,
		Quantity:  1,
	})
	return s.GetCart(ctx, sessionID)
}

// SetQuantity overrides a line's quantity; zero (or less) removes the line.
// Missing lines are a no-op.
func (s *service) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartDTO, error) {
	if quantity < 0 {
		quantity = 0
	}
	s.store.SetQuantity(sessionID, productID, quantity)
	return s.GetCart(ctx, sessionID)
}

// RemoveItem deletes the line unconditionally.
func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartDTO, error) {
	s.store.Remove(sessionID, productID)
	return s.GetCart(ctx, sessionID)
}

// ClearCart discards the session's cart.
func (s *service) ClearCart(_ context.Context, sessionID string) error {
	s.store.Clear(sessionID)
	return nil
}

// GetCart returns the lines with totals recomputed from captured prices.
func (s *service) GetCart(_ context.Context, sessionID string) (*CartDTO, error) {
	dto := toCartDTO(s.store.Lines(sessionID))
	return &dto, nil
}
