package lmsapi

import (
	"context"
	"net/http"
)

// User is the authenticated account as reported by the API.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"` // LEARNER, INSTRUCTOR, ADMIN
	Enabled  bool   `json:"enabled"`
}

// AuthResponse carries the user record plus the opaque token pair.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	return post[AuthResponse](c, ctx, "", "/auth/login", req)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	return post[AuthResponse](c, ctx, "", "/auth/register", req)
}

// Logout notifies the server. Callers clear local state regardless of the result.
func (c *Client) Logout(ctx context.Context, token string) error {
	return doNoContent(c, ctx, token, http.MethodPost, "/auth/logout", nil)
}

// Me fetches the profile bound to the access token.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	return get[User](c, ctx, token, "/auth/me", nil)
}

func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (MessageResponse, error) {
	return post[MessageResponse](c, ctx, "", "/auth/forgot-password", req)
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (MessageResponse, error) {
	return post[MessageResponse](c, ctx, "", "/auth/reset-password", req)
}
