package taskie

import (
	"context"
	"fmt"
	"net/http"
)

// Login exchanges credentials for a session token via POST /api/login.
func (c *Client) Login(ctx context.Context, req UserDataRequest) (string, error) {
	body := UserDataRequest{Email: req.Email, Password: req.Password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, PathLogin, nil, body, &resp); err != nil {
		return "", err
	}
	if resp.Token == nil || *resp.Token == "" {
		return "", fmt.Errorf("%w: login response has no token", ErrNoData)
	}
	return *resp.Token, nil
}

// Register creates an account via POST /api/register and returns the
// server's message.
func (c *Client) Register(ctx context.Context, req UserDataRequest) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, PathRegister, nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Message == nil {
		return "", fmt.Errorf("%w: register response has no message", ErrNoData)
	}
	return *resp.Message, nil
}
