package lmsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Course{ID: 1})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.GetCourse(context.Background(), "my-token", 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestClientOmitsAuthHeaderWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AuthResponse{AccessToken: "a"})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientNormalizesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Title is required",
			"errors":  map[string]string{"title": "must not be blank"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.CreateCourse(context.Background(), "tok", CourseRequest{})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Title is required", apiErr.Message)
	assert.Equal(t, "must not be blank", apiErr.Errors["title"])
	assert.True(t, IsValidation(err))
}

func TestClientFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.GetCourse(context.Background(), "tok", 1)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, GenericFailureMessage, apiErr.Message)
}

func TestClientErrorPredicates(t *testing.T) {
	for status, check := range map[int]func(error) bool{
		http.StatusNotFound:     IsNotFound,
		http.StatusUnauthorized: IsUnauthorized,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := New(srv.URL, 5*time.Second)
		_, err := c.GetCourse(context.Background(), "tok", 1)
		require.Error(t, err)
		assert.True(t, check(err))
		srv.Close()
	}
}

func TestClientParsesPageEnvelope(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Page[Course]{
			Content:       []Course{{ID: 1}, {ID: 2}},
			Page:          1,
			Size:          2,
			TotalElements: 5,
			TotalPages:    3,
			First:         false,
			Last:          false,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	page, err := c.ListCourses(context.Background(), "tok", CourseQuery{Page: 1, Size: 2, Keyword: "go"})
	require.NoError(t, err)

	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"2"}, gotQuery["size"])
	assert.Equal(t, []string{"go"}, gotQuery["keyword"])
}

func TestPageQueryClampsNegativePage(t *testing.T) {
	q := pageQuery(-3, 10)
	assert.Equal(t, "0", q["page"])
	assert.Equal(t, "10", q["size"])
}

func TestUnreadCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/unread-count", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"count": 4})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	n, err := c.UnreadCount(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCertificatePDFPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	data, contentType, err := c.CertificatePDF(context.Background(), "tok", 1)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}
