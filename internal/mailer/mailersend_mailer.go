package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/sweetrecords/storefront/internal/domain"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendOTPEmail(toEmail, code string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	text, html := otpBodies(code)
	return m.sendEmail(toEmail, "", otpSubject(), text, html)
}

func (m *MailerSendClient) SendOrderEmail(shopInbox string, order *domain.PlaceOrderRequest) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	text, html := orderBodies(order)
	return m.sendEmail(shopInbox, "", orderSubject(), text, html)
}

func (m *MailerSendClient) SendContactEmail(shopInbox string, msg *domain.ContactRequest) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	text, html := contactBodies(msg)
	return m.sendEmail(shopInbox, "", msg.Subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
