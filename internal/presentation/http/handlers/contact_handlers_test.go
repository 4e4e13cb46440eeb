package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/email"
)

// mockMailer records the last notification and returns a canned error.
type mockMailer struct {
	sent []email.ContactMessage
	err  error
}

func (m *mockMailer) SendContactNotification(msg email.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newContactRouter(t *testing.T, mailer email.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := quietLogger(t)
	h := NewContactHandlers(services.NewContactService(mailer, logger), logger)

	r := gin.New()
	r.POST("/api/contact", h.SubmitContact)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactSubmitSuccess(t *testing.T) {
	mailer := &mockMailer{}
	r := newContactRouter(t, mailer)

	w := postContact(r, `{"name":"Ada","email":"ada@example.com","message":"Hello there"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Ada", mailer.sent[0].Name)
	assert.Equal(t, "ada@example.com", mailer.sent[0].Email)
}

func TestContactMissingFields(t *testing.T) {
	r := newContactRouter(t, &mockMailer{})

	w := postContact(r, `{"name":"Ada"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	assert.Contains(t, w.Body.String(), "message")
}

func TestContactWhitespaceOnlyFieldsRejected(t *testing.T) {
	r := newContactRouter(t, &mockMailer{})

	w := postContact(r, `{"name":"  ","email":"ada@example.com","message":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestContactMailNotConfigured(t *testing.T) {
	r := newContactRouter(t, nil)

	w := postContact(r, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContactDeliveryFailure(t *testing.T) {
	r := newContactRouter(t, &mockMailer{err: errors.New("smtp down")})

	w := postContact(r, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContactMalformedBody(t *testing.T) {
	r := newContactRouter(t, &mockMailer{})

	w := postContact(r, `{broken`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
