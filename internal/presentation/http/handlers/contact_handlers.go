package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/email"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// ContactRequest represents the contact form submission body
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactHandlers contains the contact form HTTP handler
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

// NewContactHandlers creates contact handlers with injected dependencies
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger) *ContactHandlers {
	return &ContactHandlers{contactService: contactService, logger: logger}
}

// SubmitContact validates and forwards a contact form submission
func (h *ContactHandlers) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.contactService.Submit(email.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing required fields: " + strings.Join(validation.Missing, ", "),
		})
	case errors.Is(err, services.ErrMailNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact form is not available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
	}
}
