package authControllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbweb/config"
	authControllers "sbweb/controllers/auth"
	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/notify"
	authRoutes "sbweb/routers/authRoutes"
	"sbweb/session"
)

func newTestApp(t *testing.T, upstreamURL string) (*fiber.App, *session.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("SESSION_DB_DRIVER", "sqlite")
	config.LoadConfig()

	db, err := session.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	store := session.NewStore(db, time.Hour)

	api := lmsapi.New(upstreamURL, 2*time.Second)
	auth := middleware.NewAuth(store)
	badges := notify.NewRegistry(context.Background(), time.Hour)
	t.Cleanup(badges.RemoveAll)

	app := fiber.New()
	app.Use(auth.Load())
	authRoutes.SetupAuthRoutes(app, authControllers.New(api, auth, badges), auth)
	return app, store
}

func loginUpstream(t *testing.T, logoutStatus int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(lmsapi.AuthResponse{
				User:         lmsapi.User{ID: 1, Email: "jo@example.com", Username: "jo", Role: "LEARNER", Enabled: true},
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			})
		case "/auth/logout":
			w.WriteHeader(logoutStatus)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doLogin(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": "jo@example.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == config.AppConfig.CookieName {
			return cookie
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func TestLoginOpensSession(t *testing.T) {
	srv := loginUpstream(t, http.StatusOK)
	app, _ := newTestApp(t, srv.URL)

	cookie := doLogin(t, app)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The cookie restores the session on the next request.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginFailureSurfacesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	t.Cleanup(srv.Close)
	app, _ := newTestApp(t, srv.URL)

	body, _ := json.Marshal(map[string]string{"email": "jo@example.com", "password": "wrongpass"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Invalid email or password", envelope.Message)
}

func TestMeRequiresSession(t *testing.T) {
	srv := loginUpstream(t, http.StatusOK)
	app, _ := newTestApp(t, srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsSessionEvenWhenUpstreamFails(t *testing.T) {
	srv := loginUpstream(t, http.StatusInternalServerError)
	app, _ := newTestApp(t, srv.URL)

	cookie := doLogin(t, app)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The old cookie no longer restores a session.
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginValidation(t *testing.T) {
	srv := loginUpstream(t, http.StatusOK)
	app, _ := newTestApp(t, srv.URL)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email", "password": ""})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
