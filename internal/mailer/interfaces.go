package mailer

import "github.com/sweetrecords/storefront/internal/domain"

type Service interface {
	SendOTPEmail(toEmail, code string) error
	SendOrderEmail(shopInbox string, order *domain.PlaceOrderRequest) error
	SendContactEmail(shopInbox string, msg *domain.ContactRequest) error
}
