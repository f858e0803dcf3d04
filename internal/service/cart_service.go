package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/internal/repository"
	"github.com/sweetrecords/storefront/pkg/events"
	"github.com/sweetrecords/storefront/pkg/logger"
)

type CartService interface {
	Add(ctx context.Context, userID, productID int64) (*domain.CartEntry, error)
	List(ctx context.Context, userID int64) ([]domain.CartEntry, error)
	Remove(ctx context.Context, userID, productID int64) error
}

type cartService struct {
	cartRepo repository.CartRepository
	eventBus events.EventBus
}

func NewCartService(cartRepo repository.CartRepository, eventBus events.EventBus) CartService {
	return &cartService{
		cartRepo: cartRepo,
		eventBus: eventBus,
	}
}

func (s *cartService) Add(ctx context.Context, userID, productID int64) (*domain.CartEntry, error) {
	// The unique (user_id, product_id) index is the only duplicate check;
	// re-adding surfaces as ErrDuplicate from the store.
	entry, err := s.cartRepo.Add(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, events.CartItemAdded, events.CartItemAddedEvent{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish cart.item.added", "error", err, "user_id", userID)
	}

	return entry, nil
}

func (s *cartService) List(ctx context.Context, userID int64) ([]domain.CartEntry, error) {
	entries, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	// An empty cart is a normal state, never an error.
	return entries, nil
}

func (s *cartService) Remove(ctx context.Context, userID, productID int64) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}
