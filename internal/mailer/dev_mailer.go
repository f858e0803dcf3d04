package mailer

import (
	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/pkg/logger"
)

// DevMailer prints mail to the log instead of sending it.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendOTPEmail(toEmail, code string) error {
	logger.Info("[DEV MAIL] OTP email",
		"to", toEmail,
		"code", code,
	)
	return nil
}

func (d *DevMailer) SendOrderEmail(shopInbox string, order *domain.PlaceOrderRequest) error {
	logger.Info("[DEV MAIL] Order email",
		"to", shopInbox,
		"customer", order.Name,
		"customer_email", order.Email,
		"product", order.ProductName,
		"quantity", order.Quantity,
		"total", order.Total,
	)
	return nil
}

func (d *DevMailer) SendContactEmail(shopInbox string, msg *domain.ContactRequest) error {
	logger.Info("[DEV MAIL] Contact email",
		"to", shopInbox,
		"from", msg.Email,
		"subject", msg.Subject,
	)
	return nil
}
