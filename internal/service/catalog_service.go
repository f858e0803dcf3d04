package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/internal/images"
	"github.com/sweetrecords/storefront/internal/repository"
	"github.com/sweetrecords/storefront/pkg/events"
	"github.com/sweetrecords/storefront/pkg/logger"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, req *domain.CreateProductRequest, imageType string, image io.Reader) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	imageStore  images.Store
	eventBus    events.EventBus
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	imageStore images.Store,
	eventBus events.EventBus,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		imageStore:  imageStore,
		eventBus:    eventBus,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, req *domain.CreateProductRequest, imageType string, image io.Reader) (*domain.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	imageURL, err := s.imageStore.Upload(ctx, imageType, image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload product image: %w", err)
	}

	product, err := s.productRepo.Create(ctx, req.Name, req.Price, req.Description, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.eventBus.Publish(ctx, events.ProductCreated, events.ProductCreatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		CreatedAt: product.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish product.created", "error", err, "product_id", product.ID)
	}

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.eventBus.Publish(ctx, events.ProductDeleted, events.ProductDeletedEvent{
		ProductID: id,
		DeletedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish product.deleted", "error", err, "product_id", id)
	}

	return nil
}
