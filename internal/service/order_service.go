package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/internal/mailer"
	"github.com/sweetrecords/storefront/pkg/config"
	"github.com/sweetrecords/storefront/pkg/events"
	"github.com/sweetrecords/storefront/pkg/logger"
)

// OrderService forwards order and contact mail to the shop inbox. Orders are
// not persisted; the notification is the order.
type OrderService interface {
	PlaceOrder(ctx context.Context, req *domain.PlaceOrderRequest) error
	Contact(ctx context.Context, req *domain.ContactRequest) error
}

type orderService struct {
	mailer   mailer.Service
	eventBus events.EventBus
	config   *config.Config
}

func NewOrderService(mailer mailer.Service, eventBus events.EventBus, config *config.Config) OrderService {
	return &orderService{
		mailer:   mailer,
		eventBus: eventBus,
		config:   config,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req *domain.PlaceOrderRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.mailer.SendOrderEmail(s.config.Email.ShopInbox, req); err != nil {
		logger.ErrorContext(ctx, "Failed to send order email", "error", err, "customer", req.Email)
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	if err := s.eventBus.Publish(ctx, events.OrderPlaced, events.OrderPlacedEvent{
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		Total:         req.Total,
		PlacedAt:      time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish order.placed", "error", err)
	}

	return nil
}

func (s *orderService) Contact(ctx context.Context, req *domain.ContactRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.mailer.SendContactEmail(s.config.Email.ShopInbox, req); err != nil {
		logger.ErrorContext(ctx, "Failed to send contact email", "error", err, "from", req.Email)
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	return nil
}
