package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/minimart/pkg/auth"
	"github.com/example/minimart/pkg/config"
	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

// Password for every fixture user.
const fixturePassword = "secret123"

func fixtureData(t *testing.T) store.Data {
	t.Helper()
	hash, err := auth.HashPassword(fixturePassword)
	require.NoError(t, err)

	return store.Data{
		Users: []models.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com", Password: hash, Phone: "111", Image: "a.png", Role: "customer"},
			{ID: 2, Name: "Bob", Email: "bob@example.com", Password: hash, Phone: "222", Image: "b.png", Role: "customer"},
		},
		Products: []models.Product{
			{ID: 1, Name: "Espresso Machine", Description: "Compact espresso maker", Price: 199.99, CategoryID: 1, Stock: 5, Brand: "Barista", CreatedAt: "2026-01-01T00:00:00Z"},
			{ID: 2, Name: "Coffee Grinder", Description: "Burr grinder", Price: 59.5, CategoryID: 1, Stock: 12, Brand: "Barista", CreatedAt: "2026-01-02T00:00:00Z"},
			{ID: 3, Name: "Yoga Mat", Description: "Non-slip mat", Price: 25, CategoryID: 2, Stock: 30, Brand: "Generic", CreatedAt: "2026-01-03T00:00:00Z"},
		},
		Categories: []models.Category{
			{ID: 1, Name: "Kitchen"},
			{ID: 2, Name: "Fitness"},
		},
		Banners: []models.Banner{
			{ID: 1, Title: "B1", Description: "d", Image: "i", Link: "l", Position: "hero", Priority: 2, IsActive: true, StartDate: "2026-01-01T00:00:00Z", CreatedAt: "2026-01-01T00:00:00Z"},
			{ID: 2, Title: "B2", Description: "d", Image: "i", Link: "l", Position: "sidebar", Priority: 1, IsActive: false, StartDate: "2026-01-01T00:00:00Z", CreatedAt: "2026-01-01T00:00:00Z"},
		},
		Cart:   []models.CartItem{},
		Orders: []models.Order{},
	}
}

func newTestServer(t *testing.T, data store.Data) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "db.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	logger := zap.NewNop()
	st, err := store.Open(path, logger)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Store:  config.StoreConfig{Path: path},
		Auth:   config.AuthConfig{Secret: "test-secret", TokenTTL: 24 * time.Hour},
	}

	s := New(cfg, logger, st, auth.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL))
	s.SetupRoutes()
	return s
}

func tokenFor(t *testing.T, s *Server, userID int, email string) string {
	t.Helper()
	token, err := s.tokens.Issue(userID, email)
	require.NoError(t, err)
	return token
}

type envResp struct {
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
}

func doRequest(t *testing.T, s *Server, method, path, token string, body interface{}) envResp {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	// Every endpoint answers 200 at the transport layer.
	require.Equal(t, http.StatusOK, rec.Code, "transport status for %s %s", method, path)

	var env envResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	env := doRequest(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, 200, env.StatusCode)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "OK", data["status"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestEnvelopeUsesArabicForArabicAcceptLanguage(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	req.Header.Set("Accept-Language", "ar-SA,ar;q=0.9")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, 404, env.StatusCode)
	assert.Equal(t, "المنتج غير موجود", env.Message)
}

func TestMissingTokenIs401InvalidTokenIs403(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	env := doRequest(t, s, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, 401, env.StatusCode)

	env = doRequest(t, s, http.MethodGet, "/cart", "bogus.token.value", nil)
	assert.Equal(t, 403, env.StatusCode)
}

func TestGetRequestsDoNotMutateSnapshot(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	before, err := os.ReadFile(s.config.Store.Path)
	require.NoError(t, err)

	first := doRequest(t, s, http.MethodGet, "/products", "", nil)
	second := doRequest(t, s, http.MethodGet, "/products", "", nil)
	assert.Equal(t, string(first.Data), string(second.Data))

	after, err := os.ReadFile(s.config.Store.Path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSwaggerRouteMounted(t *testing.T) {
	s := newTestServer(t, fixtureData(t))

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusNotFound, rec.Code)
}
