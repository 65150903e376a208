package lmsapi

import "context"

type Profile struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
}

func (c *Client) GetProfile(ctx context.Context, token string) (Profile, error) {
	return get[Profile](c, ctx, token, "/users/me/profile", nil)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (Profile, error) {
	return put[Profile](c, ctx, token, "/users/me/profile", req)
}
