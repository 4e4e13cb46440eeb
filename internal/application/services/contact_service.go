package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/novamark/sitebridge-go/internal/infrastructure/email"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// ErrMailNotConfigured reports that no outbound email client is available.
var ErrMailNotConfigured = errors.New("email delivery is not configured")

// ValidationError lists the required contact fields a submission is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// ContactService validates contact submissions and dispatches notifications.
type ContactService struct {
	mailer email.Service
	logger *logging.ChanneledLogger
}

// NewContactService creates a new contact application service. A nil mailer
// is accepted so the gateway can run without email credentials.
func NewContactService(mailer email.Service, logger *logging.ChanneledLogger) *ContactService {
	return &ContactService{mailer: mailer, logger: logger}
}

// Submit validates the message and sends the notification email. Callers can
// distinguish bad input (*ValidationError) from a missing email integration
// (ErrMailNotConfigured) and from delivery failure (any other error).
func (s *ContactService) Submit(msg email.ContactMessage) error {
	var missing []string
	if strings.TrimSpace(msg.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(msg.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(msg.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if s.mailer == nil {
		return ErrMailNotConfigured
	}

	if err := s.mailer.SendContactNotification(msg); err != nil {
		s.logger.Email().Error("Contact notification failed",
			"from", msg.Email, "error", err)
		return err
	}

	s.logger.Email().Info("Contact notification sent", "from", msg.Email)
	return nil
}
