package client

import (
	"context"
	"fmt"

	"foodrun/model"
	"foodrun/stream"
)

type session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var s session
	req := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, "POST", "/api/auth/signin", req, &s); err != nil {
		return err
	}
	c.setSession(s.Token, &s.User)
	return nil
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) error {
	var s session
	req := map[string]string{"name": name, "email": email, "password": password}
	if err := c.doJSON(ctx, "POST", "/api/auth/signup", req, &s); err != nil {
		return err
	}
	c.setSession(s.Token, &s.User)
	return nil
}

// SignOut revokes the session token. The local session is dropped even when
// the revocation call fails.
func (c *Client) SignOut(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}
	err := c.doJSON(ctx, "POST", "/api/auth/signout", nil, nil)
	c.setSession("", nil)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (c *Client) HasUser() bool {
	return c.Token() != ""
}

func (c *Client) CurrentUserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return ""
	}
	return c.user.ID
}

func (c *Client) CurrentUser(ctx context.Context) (*stream.Subscription[*model.User], error) {
	if !c.HasUser() {
		return stream.Static[*model.User](ctx, nil), nil
	}
	return subscribe[*model.User](ctx, c, "/ws/auth/me", nil)
}
