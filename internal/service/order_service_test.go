package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sweetrecords/storefront/internal/domain"
)

func validOrder() *domain.PlaceOrderRequest {
	return &domain.PlaceOrderRequest{
		Name:        "Alice",
		Email:       "alice@example.com",
		ProductName: "Chocolate Fudge",
		PhoneNumber: "01712345678",
		Quantity:    2,
		Total:       "900",
	}
}

func TestPlaceOrder(t *testing.T) {
	mail := &mockMailer{}
	bus := &mockEventBus{}
	svc := NewOrderService(mail, bus, testConfig())

	if err := svc.PlaceOrder(context.Background(), validOrder()); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if mail.orderMail != 1 {
		t.Errorf("Expected 1 order email, got %d", mail.orderMail)
	}
	if mail.lastTo != "shop@example.com" {
		t.Errorf("Order mail went to %q, not the shop inbox", mail.lastTo)
	}
	if !bus.published("order.placed") {
		t.Error("Expected order.placed event")
	}
}

func TestPlaceOrderInvalidPhone(t *testing.T) {
	svc := NewOrderService(&mockMailer{}, &mockEventBus{}, testConfig())

	order := validOrder()
	order.PhoneNumber = "12345"
	if err := svc.PlaceOrder(context.Background(), order); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestPlaceOrderMailFailure(t *testing.T) {
	svc := NewOrderService(&mockMailer{failSend: true}, &mockEventBus{}, testConfig())

	if err := svc.PlaceOrder(context.Background(), validOrder()); !errors.Is(err, domain.ErrMailDelivery) {
		t.Errorf("Expected ErrMailDelivery, got %v", err)
	}
}

func TestContact(t *testing.T) {
	mail := &mockMailer{}
	svc := NewOrderService(mail, &mockEventBus{}, testConfig())

	err := svc.Contact(context.Background(), &domain.ContactRequest{
		Email:   "bob@example.com",
		Subject: "Custom cake",
		Message: "Can you do a three-tier order by Friday?",
	})
	if err != nil {
		t.Fatalf("Contact failed: %v", err)
	}
	if mail.lastTo != "shop@example.com" {
		t.Errorf("Contact mail went to %q, not the shop inbox", mail.lastTo)
	}
}

func TestContactValidation(t *testing.T) {
	svc := NewOrderService(&mockMailer{}, &mockEventBus{}, testConfig())

	err := svc.Contact(context.Background(), &domain.ContactRequest{
		Email: "bob@example.com",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
