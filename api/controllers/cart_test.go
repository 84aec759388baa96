package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/makerstech/storefront-backend/api/middleware"
	cartsvc "github.com/makerstech/storefront-backend/internal/cart"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

type stubCartService struct {
	cart       *cartsvc.CartDTO
	lastAction string
	lastQty    int
	lastID     int64
}

func (s *stubCartService) AddToCart(_ context.Context, _ string, productID int64) (*cartsvc.CartDTO, error) {
	s.lastAction, s.lastID = "add", productID
	return s.cart, nil
}

func (s *stubCartService) SetQuantity(_ context.Context, _ string, productID int64, quantity int) (*cartsvc.CartDTO, error) {
	s.lastAction, s.lastID, s.lastQty = "set", productID, quantity
	return s.cart, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, _ string, productID int64) (*cartsvc.CartDTO, error) {
	s.lastAction, s.lastID = "remove", productID
	return s.cart, nil
}

func (s *stubCartService) ClearCart(context.Context, string) error {
	s.lastAction = "clear"
	return nil
}

func (s *stubCartService) GetCart(context.Context, string) (*cartsvc.CartDTO, error) {
	s.lastAction = "get"
	return s.cart, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func sessionContext(ctx context.Context) context.Context {
	return middleware.WithSessionID(ctx, "test-session")
}

func withProductIDParam(req *http.Request, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productID", value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCartAddItem(t *testing.T) {
	logg := testLogger()
	stub := &stubCartService{cart: &cartsvc.CartDTO{TotalItems: 1}}

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":5}`))
		req = req.WithContext(sessionContext(req.Context()))
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastAction != "add" || stub.lastID != 5 {
			t.Fatalf("expected add(5), got %s(%d)", stub.lastAction, stub.lastID)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{}`))
		req = req.WithContext(sessionContext(req.Context()))
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":5}`))
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without session, got %d", rec.Code)
		}
	})
}

func TestCartSetQuantity(t *testing.T) {
	logg := testLogger()
	stub := &stubCartService{cart: &cartsvc.CartDTO{}}

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/5", strings.NewReader(`{"quantity":3}`))
		req = withProductIDParam(req, "5")
		req = req.WithContext(sessionContext(req.Context()))
		rec := httptest.NewRecorder()
		CartSetQuantity(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastAction != "set" || stub.lastID != 5 || stub.lastQty != 3 {
			t.Fatalf("expected set(5, 3), got %s(%d, %d)", stub.lastAction, stub.lastID, stub.lastQty)
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/abc", strings.NewReader(`{"quantity":3}`))
		req = withProductIDParam(req, "abc")
		req = req.WithContext(sessionContext(req.Context()))
		rec := httptest.NewRecorder()
		CartSetQuantity(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	logg := testLogger()
	stub := &stubCartService{cart: &cartsvc.CartDTO{}}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/7", nil)
	req = withProductIDParam(req, "7")
	req = req.WithContext(sessionContext(req.Context()))
	rec := httptest.NewRecorder()
	CartRemoveItem(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastAction != "remove" || stub.lastID != 7 {
		t.Fatalf("expected remove(7), got %s(%d)", stub.lastAction, stub.lastID)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	req = req.WithContext(sessionContext(req.Context()))
	rec = httptest.NewRecorder()
	CartClear(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastAction != "clear" {
		t.Fatalf("expected clear, got %s", stub.lastAction)
	}
}

func TestCartGet_WrapsInDataEnvelope(t *testing.T) {
	logg := testLogger()
	stub := &stubCartService{cart: &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}, TotalItems: 0}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req = req.WithContext(sessionContext(req.Context()))
	rec := httptest.NewRecorder()
	CartGet(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data cartsvc.CartDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
}
