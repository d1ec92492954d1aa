package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legaldesk/legal-case-api/api/handlers"
	"github.com/legaldesk/legal-case-api/config"
	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/models"
	"github.com/legaldesk/legal-case-api/repository"
)

func newApp(t *testing.T) *handlers.App {
	t.Helper()
	store, err := databases.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	a := &handlers.App{
		Config: config.Config{DataDir: t.TempDir()},
		Store:  store,
		Local:  store,
		Repo:   repository.New(store, false),
	}
	a.Router = a.New()
	return a
}

func TestHealthCheckRoute(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.HealthCheckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Alive)
	assert.Equal(t, "local", resp.Backend)
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest("GET", "/api/v1/cases", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginThenBearerAccess(t *testing.T) {
	a := newApp(t)

	login := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"username": "admin", "password": "admin123"}`))
	loginRR := httptest.NewRecorder()
	a.Router.ServeHTTP(loginRR, login)
	require.Equal(t, http.StatusOK, loginRR.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(loginRR.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest("GET", "/api/v1/cases", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var cases []models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))
	assert.Len(t, cases, 4)
}
