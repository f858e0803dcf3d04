package mailer

import (
	"fmt"

	"github.com/sweetrecords/storefront/internal/domain"
)

func otpSubject() string {
	return "OTP Verification"
}

func otpBodies(code string) (text, html string) {
	text = fmt.Sprintf("Your OTP: %s\n\nThe code expires in 10 minutes. If you didn't request it, ignore this email.", code)
	html = fmt.Sprintf(`
		<h2>Sweet Records</h2>
		<p>Your OTP: <strong style="font-size: 24px;">%s</strong></p>
		<p>The code expires in 10 minutes.</p>
		<p>If you didn't request it, please ignore this email.</p>
	`, code)
	return text, html
}

func orderSubject() string {
	return "New Customer Order"
}

func orderBodies(o *domain.PlaceOrderRequest) (text, html string) {
	text = fmt.Sprintf(
		"Customer Name: %s\nCustomer Email: %s\nOrdered Item: %s\nLocation: %s\nPhone Number: %s\nQuantity: %d %s\nTotal Cost: %s",
		o.Name, o.Email, o.ProductName, o.Location, o.PhoneNumber, o.Quantity, o.ProductName, o.Total,
	)
	html = fmt.Sprintf(`
		<body>
			<img src="%s" style="width: 68.5333%%; aspect-ratio: 13/10"/>
			<p>Customer Name: <strong style="text-decoration: underline;">%s</strong></p>
			<p>Customer Email: <strong style="text-decoration: underline;">%s</strong></p>
			<p>Ordered Item: <strong style="text-decoration: underline;">%s</strong></p>
			<p>Location: <strong style="text-decoration: underline;">%s</strong></p>
			<p>Phone Number: <strong style="text-decoration: underline;">%s</strong></p>
			<p>Quantity: <strong style="text-decoration: underline;">%d %s</strong></p>
			<p>Total Cost: <strong style="text-decoration: underline;">%s</strong></p>
		</body>`,
		o.ImageURL, o.Name, o.Email, o.ProductName, o.Location, o.PhoneNumber, o.Quantity, o.ProductName, o.Total,
	)
	return text, html
}

func contactBodies(m *domain.ContactRequest) (text, html string) {
	text = fmt.Sprintf("From: %s\n\n%s", m.Email, m.Message)
	html = fmt.Sprintf("<p>From: %s</p><p>%s</p>", m.Email, m.Message)
	return text, html
}
