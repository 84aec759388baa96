package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	inventorysvc "github.com/makerstech/storefront-backend/internal/inventory"
	"github.com/makerstech/storefront-backend/pkg/enums"
)

type stubInventoryService struct {
	lastFilter inventorysvc.FilterInput
	items      []inventorysvc.ItemDTO
	metrics    *inventorysvc.MetricsDTO
}

func (s *stubInventoryService) FilterProducts(_ context.Context, filter inventorysvc.FilterInput) ([]inventorysvc.ItemDTO, error) {
	s.lastFilter = filter
	return s.items, nil
}

func (s *stubInventoryService) Metrics(context.Context) (*inventorysvc.MetricsDTO, error) {
	return s.metrics, nil
}

func TestInventoryList_ParsesFilters(t *testing.T) {
	logg := testLogger()
	stub := &stubInventoryService{items: []inventorysvc.ItemDTO{}}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/inventory?search=hp&stock=low-stock&price=under-50", nil)
	rec := httptest.NewRecorder()
	InventoryList(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.lastFilter.SearchTerm != "hp" {
		t.Fatalf("unexpected search term %q", stub.lastFilter.SearchTerm)
	}
	if stub.lastFilter.Stock != enums.StockFilterLowStock {
		t.Fatalf("unexpected stock filter %q", stub.lastFilter.Stock)
	}
	if stub.lastFilter.Price != enums.PriceBracketUnder50 {
		t.Fatalf("unexpected price filter %q", stub.lastFilter.Price)
	}
}

func TestInventoryList_DefaultsToAll(t *testing.T) {
	logg := testLogger()
	stub := &stubInventoryService{items: []inventorysvc.ItemDTO{}}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/inventory", nil)
	rec := httptest.NewRecorder()
	InventoryList(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFilter.Stock != enums.StockFilterAll || stub.lastFilter.Price != enums.PriceBracketAll {
		t.Fatalf("expected all/all defaults, got %q/%q", stub.lastFilter.Stock, stub.lastFilter.Price)
	}
}

func TestInventoryList_RejectsUnknownFilter(t *testing.T) {
	logg := testLogger()
	stub := &stubInventoryService{}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/inventory?stock=plenty", nil)
	rec := httptest.NewRecorder()
	InventoryList(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown stock filter, got %d", rec.Code)
	}
}

func TestInventoryMetrics(t *testing.T) {
	logg := testLogger()
	stub := &stubInventoryService{metrics: &inventorysvc.MetricsDTO{
		TotalProducts: 6,
		TotalStock:    95,
		TotalValue:    18130,
		LowStockCount: 2,
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/inventory/metrics", nil)
	rec := httptest.NewRecorder()
	InventoryMetrics(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data inventorysvc.MetricsDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if envelope.Data.TotalProducts != 6 || envelope.Data.LowStockCount != 2 {
		t.Fatalf("unexpected metrics %+v", envelope.Data)
	}
}
