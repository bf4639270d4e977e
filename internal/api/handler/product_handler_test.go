package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/luminosmc/community-api/internal/core/domain"
)

func TestProductHandler_Create(t *testing.T) {
	handler := NewProductHandler(&stubProductService{})

	body := `{"name":"VIP+","price":9.99,"features":["fly"],"featured":true}`
	c, rec := newJSONContext(http.MethodPost, "/api/products", strings.NewReader(body), owner)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var product domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if product.Name != "VIP+" || product.Price != 9.99 || !product.Featured || len(product.Features) != 1 {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductHandler_UpdatePrice(t *testing.T) {
	handler := NewProductHandler(&stubProductService{})

	c, rec := newJSONContext(http.MethodPut, "/api/products/pr1", strings.NewReader(`{"price":1.5}`), owner)
	c.SetParamNames("id")
	c.SetParamValues("pr1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var product domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if product.Price != 1.5 || product.Name != "VIP" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductHandler_DeleteForbidden(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(actor *domain.Principal, id string) error { return domain.ErrPermissionDenied },
	}
	handler := NewProductHandler(stub)

	c, _ := newJSONContext(http.MethodDelete, "/api/products/pr1", nil, bob)
	c.SetParamNames("id")
	c.SetParamValues("pr1")
	if err := handler.Delete(c); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}
