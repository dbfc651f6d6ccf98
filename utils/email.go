package utils

import (
	"fmt"

	"github.com/keighl/postmark"
)

// EmailService sends transactional mail through Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes a Postmark-backed email service. Returns
// nil when no API token is configured; callers treat a nil service as
// email disabled.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic HTML email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user
func (es *EmailService) SendWelcomeEmail(toEmail, name string) error {
	subject := "Welcome to ShopCart"
	htmlContent := fmt.Sprintf(
		"<strong>Hi %s,</strong><br><br>Your account has been created successfully. Happy shopping!",
		name,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
