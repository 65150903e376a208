package enrollmentControllers_test

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
	enrollmentControllers "sbweb/controllers/enrollment"
	"sbweb/lmsapi"
	"sbweb/middleware"
	"sbweb/notify"
	authRoutes "sbweb/routers/authRoutes"
	enrollmentRoutes "sbweb/routers/enrollmentRoutes"
	"sbweb/session"
	"sbweb/viewmodel"
)

func myCoursesUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(lmsapi.AuthResponse{
				User:         lmsapi.User{ID: 1, Email: "jo@example.com", Username: "jo", Role: "LEARNER", Enabled: true},
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			})
		case "/enrollments/my":
			json.NewEncoder(w).Encode([]lmsapi.Enrollment{
				{ID: 1, CourseID: 10, CourseTitle: "Go Basics", Status: lmsapi.EnrollmentActive},
				{ID: 2, CourseID: 20, CourseTitle: "SQL Deep Dive", Status: lmsapi.EnrollmentCompleted},
				{ID: 3, CourseID: 30, CourseTitle: "Abandoned Course", Status: lmsapi.EnrollmentDropped},
			})
		case "/enrollments/my/progress":
			json.NewEncoder(w).Encode([]lmsapi.CourseProgress{
				{CourseID: 10, TotalLessons: 8, CompletedLessons: 2, ProgressPercentage: 25},
				{CourseID: 20, TotalLessons: 5, CompletedLessons: 5, ProgressPercentage: 100},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not found"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, upstreamURL string) *fiber.App {
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
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentControllers.New(api, auth), auth)
	return app
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

func TestMyCoursesGroupsByEnrollmentStatus(t *testing.T) {
	app := newTestApp(t, myCoursesUpstream(t).URL)
	cookie := doLogin(t, app)

	req := httptest.NewRequest(http.MethodGet, "/enrollments/my", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			All       []viewmodel.CourseCard `json:"all"`
			Active    []viewmodel.CourseCard `json:"active"`
			Completed []viewmodel.CourseCard `json:"completed"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	require.Len(t, envelope.Data.Active, 1)
	assert.Equal(t, int64(10), envelope.Data.Active[0].Enrollment.CourseID)
	assert.Equal(t, 25, envelope.Data.Active[0].ProgressPercent)

	require.Len(t, envelope.Data.Completed, 1)
	assert.Equal(t, int64(20), envelope.Data.Completed[0].Enrollment.CourseID)

	// A dropped enrollment shows on the all tab but in neither bucket.
	assert.Len(t, envelope.Data.All, 3)
	for _, card := range append(envelope.Data.Active, envelope.Data.Completed...) {
		assert.NotEqual(t, lmsapi.EnrollmentDropped, card.Enrollment.Status)
	}
}
