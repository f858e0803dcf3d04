package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sweetrecords/storefront/internal/domain"
)

func TestCreateProduct(t *testing.T) {
	bus := &mockEventBus{}
	store := &mockImageStore{}
	svc := NewCatalogService(newMockProductRepo(), store, bus)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &domain.CreateProductRequest{
		Name:        "Chocolate Fudge",
		Price:       "450",
		Description: "Dense and dark",
	}, "image/png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if product.ImageURL == "" {
		t.Error("Expected hosted image URL on the product")
	}
	if store.uploads != 1 {
		t.Errorf("Expected 1 upload, got %d", store.uploads)
	}
	if !bus.published("product.created") {
		t.Error("Expected product.created event")
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(newMockProductRepo(), &mockImageStore{}, &mockEventBus{})

	_, err := svc.CreateProduct(context.Background(), &domain.CreateProductRequest{
		Price: "450",
	}, "image/png", strings.NewReader("x"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateProductUploadFailure(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewCatalogService(repo, &mockImageStore{failUpload: true}, &mockEventBus{})

	_, err := svc.CreateProduct(context.Background(), &domain.CreateProductRequest{
		Name:  "Red Velvet",
		Price: "500",
	}, "image/png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("Expected error when upload fails")
	}

	// No half-created product without a hosted image.
	products, _ := repo.List(context.Background())
	if len(products) != 0 {
		t.Errorf("Expected no products after failed upload, got %d", len(products))
	}
}

func TestListAndDeleteProduct(t *testing.T) {
	bus := &mockEventBus{}
	svc := NewCatalogService(newMockProductRepo(), &mockImageStore{}, bus)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, &domain.CreateProductRequest{
		Name:  "Lemon Tart",
		Price: "300",
	}, "image/jpeg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	products, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}

	if err := svc.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if !bus.published("product.deleted") {
		t.Error("Expected product.deleted event")
	}

	if err := svc.DeleteProduct(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}
