package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/manager"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
	})
	require.NoError(t, err)
	return logger
}

func newRevalidateRouter(t *testing.T, secret string, cache *manager.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := quietLogger(t)
	h := NewRevalidateHandlers(services.NewRevalidationService(cache, logger), secret, logger)

	r := gin.New()
	r.POST("/api/revalidate", h.Revalidate)
	return r
}

func postRevalidate(r *gin.Engine, secret, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("x-revalidation-secret", secret)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRevalidateRejectsWrongSecret(t *testing.T) {
	r := newRevalidateRouter(t, "topsecret", manager.NewManager())

	w := postRevalidate(r, "wrong", `{"post_type":"page","slug":"about"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid secret"}`, w.Body.String())
}

func TestRevalidateRejectsMissingSecret(t *testing.T) {
	r := newRevalidateRouter(t, "topsecret", manager.NewManager())

	w := postRevalidate(r, "", `{"post_type":"page","slug":"about"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRevalidateRejectsWhenUnconfigured(t *testing.T) {
	r := newRevalidateRouter(t, "", manager.NewManager())

	w := postRevalidate(r, "", `{"post_type":"page","slug":"about"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRevalidatePage(t *testing.T) {
	cache := manager.NewManager()
	cache.SetPage("/about", "vm", time.Minute)

	r := newRevalidateRouter(t, "topsecret", cache)
	w := postRevalidate(r, "topsecret", `{"post_type":"page","slug":"about"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Revalidated bool     `json:"revalidated"`
		Paths       []string `json:"paths"`
		Now         int64    `json:"now"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Revalidated)
	assert.Equal(t, []string{"/about"}, resp.Paths)
	assert.InDelta(t, time.Now().UnixMilli(), resp.Now, float64(5*time.Second/time.Millisecond))

	_, ok := cache.GetPage("/about")
	assert.False(t, ok)
}

func TestRevalidatePostIncludesDetailPath(t *testing.T) {
	r := newRevalidateRouter(t, "topsecret", manager.NewManager())

	w := postRevalidate(r, "topsecret", `{"post_type":"post","slug":"my-post"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Paths []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"/blog", "/blog/my-post"}, resp.Paths)
}

func TestRevalidateUnknownTypeSucceedsEmpty(t *testing.T) {
	r := newRevalidateRouter(t, "topsecret", manager.NewManager())

	w := postRevalidate(r, "topsecret", `{"post_type":"mystery"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Revalidated bool     `json:"revalidated"`
		Paths       []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Revalidated)
	assert.Empty(t, resp.Paths)
}

func TestRevalidateMalformedBody(t *testing.T) {
	r := newRevalidateRouter(t, "topsecret", manager.NewManager())

	w := postRevalidate(r, "topsecret", `{not json`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error revalidating")
}
