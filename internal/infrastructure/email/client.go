// Package email provides the email client for sending contact notifications.
package email

import (
	"fmt"
	"os"

	"github.com/novamark/sitebridge-go/internal/infrastructure/email/templates"
	"github.com/resendlabs/resend-go"
)

// ContactMessage is a submitted contact-form payload.
type ContactMessage struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
}

// Service defines the interface for sending notification emails, allowing
// for mock implementations in tests.
type Service interface {
	SendContactNotification(msg ContactMessage) error
}

// ResendClient is the concrete implementation of the email Service using the
// Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	toEmail   string
}

// NewService creates a new email service client, returning the Service
// interface. Missing RESEND_API_KEY is an error so callers can run in
// degraded mode without a mailer.
func NewService() (Service, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	toEmail := os.Getenv("CONTACT_EMAIL_TO")
	if toEmail == "" {
		return nil, fmt.Errorf("CONTACT_EMAIL_TO environment variable is required")
	}

	fromEmail := os.Getenv("CONTACT_EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@novamark.dev"
	}

	fromName := os.Getenv("CONTACT_EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Novamark Website"
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}, nil
}

// SendContactNotification composes and sends the contact-form notification.
func (c *ResendClient) SendContactNotification(msg ContactMessage) error {
	subject := fmt.Sprintf("New contact form submission from %s", msg.Name)

	content := templates.GetContactEmailContent(templates.ContactEmailProps{
		Name:    msg.Name,
		Email:   msg.Email,
		Company: msg.Company,
		Phone:   msg.Phone,
		Message: msg.Message,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: msg.Email,
		Subject: subject,
		Html:    htmlContent,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact notification via Resend: %w", err)
	}

	return nil
}
