package lmsapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client issues authenticated requests against the LMS REST API. It does no
// retries and no caching; every call resolves with the parsed payload or an
// error, transport failures wrapped and HTTP failures normalized to *APIError.
type Client struct {
	http *resty.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: hc}
}

// Page is the envelope returned by zero-based paginated list endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// MessageResponse is the body of endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

func (c *Client) newRequest(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// doJSON executes a request expecting a JSON payload of type T.
func doJSON[T any](c *Client, ctx context.Context, token, method, path string, query map[string]string, body any) (T, error) {
	var out T
	apiErr := &APIError{}

	req := c.newRequest(ctx, token).SetResult(&out).SetError(apiErr)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = GenericFailureMessage
		}
		return out, apiErr
	}
	return out, nil
}

// doNoContent executes a request whose successful response body is ignored.
func doNoContent(c *Client, ctx context.Context, token, method, path string, body any) error {
	apiErr := &APIError{}

	req := c.newRequest(ctx, token).SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = GenericFailureMessage
		}
		return apiErr
	}
	return nil
}

// doBytes fetches an opaque byte stream (CSV and PDF exports). The bytes are
// never interpreted; the upstream content type is passed through.
func doBytes(c *Client, ctx context.Context, token, path string) ([]byte, string, error) {
	resp, err := c.newRequest(ctx, token).Get(path)
	if err != nil {
		return nil, "", fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, "", &APIError{StatusCode: resp.StatusCode(), Message: GenericFailureMessage}
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

func get[T any](c *Client, ctx context.Context, token, path string, query map[string]string) (T, error) {
	return doJSON[T](c, ctx, token, http.MethodGet, path, query, nil)
}

func post[T any](c *Client, ctx context.Context, token, path string, body any) (T, error) {
	return doJSON[T](c, ctx, token, http.MethodPost, path, nil, body)
}

func put[T any](c *Client, ctx context.Context, token, path string, body any) (T, error) {
	return doJSON[T](c, ctx, token, http.MethodPut, path, nil, body)
}

func patch[T any](c *Client, ctx context.Context, token, path string, body any) (T, error) {
	return doJSON[T](c, ctx, token, http.MethodPatch, path, nil, body)
}

// pageQuery builds the zero-based pagination query shared by list endpoints.
func pageQuery(page, size int) map[string]string {
	if page < 0 {
		page = 0
	}
	return map[string]string{
		"page": fmt.Sprintf("%d", page),
		"size": fmt.Sprintf("%d", size),
	}
}
