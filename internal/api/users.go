package api

import (
	"context"
	"fmt"
	"net/http"
)

// usersEnvelope wraps {"users": [...]}
type usersEnvelope struct {
	Users []AdminUser `json:"users"`
}

// ListUsers fetches all registered users. Read-only; the admin console
// never creates or deletes accounts.
func (c *Client) ListUsers(ctx context.Context) ([]AdminUser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/auth/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var envelope usersEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

// ListUsersSensitive fetches the raw user rows, audit columns included.
// Backs the database inspector; everything else goes through ListUsers.
func (c *Client) ListUsersSensitive(ctx context.Context) ([]map[string]any, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/auth/admin/users-sensitive", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Users []map[string]any `json:"users"`
	}
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

// GetUser fetches a single user with full profile details
func (c *Client) GetUser(ctx context.Context, id int) (*AdminUser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/auth/admin/users/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var envelope userEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.User, nil
}
