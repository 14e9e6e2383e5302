package client

import (
	"context"
	"net/http"

	"github.com/gescar/dealership-system/pkg/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// Login exchanges credentials for a token and user record. The caller
// decides whether to persist the session.
func (c *Client) Login(ctx context.Context, email, password string) (string, *session.User, error) {
	var resp authResponse
	err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", nil, loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

// Register creates an account and returns the token and user record.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (string, *session.User, error) {
	var resp authResponse
	err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", nil, registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

// Logout asks the server to revoke the current token. Local state is
// the caller's responsibility; the call is best-effort.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "auth.logout", http.MethodPost, "/auth/logout", nil, nil, nil)
}
