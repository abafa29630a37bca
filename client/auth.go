package client

import (
	"context"
	"fmt"
	"net/http"

	"workmate/models"
)

// credentials is the login request body; the backend dispatches on "type".
type credentials struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"type"`
}

// authEnvelope wraps the backend's auth success body: {"message", "user"}.
type authEnvelope struct {
	Message string          `json:"message"`
	User    models.Identity `json:"user"`
}

// Login authenticates against the backend. The returned identity carries
// the requested role: the backend omits "type" from its user records, so
// the role is stamped from the request that selected the account table.
func (c *Client) Login(ctx context.Context, email, password string, role models.Role) (*models.Identity, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/login", credentials{Email: email, Password: password, Role: role}, &env); err != nil {
		return nil, err
	}
	id := env.User
	id.Role = role
	if !id.WellFormed() {
		return nil, fmt.Errorf("%w: login response missing identity fields", ErrMalformedResponse)
	}
	return &id, nil
}

// Register creates an account and returns the new identity (the backend
// auto-registers without a separate login step).
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.Identity, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/register", reg, &env); err != nil {
		return nil, err
	}
	id := env.User
	id.Role = reg.Role
	if !id.WellFormed() {
		return nil, fmt.Errorf("%w: register response missing identity fields", ErrMalformedResponse)
	}
	return &id, nil
}
