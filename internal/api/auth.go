package api

import (
	"context"
	"net/http"
)

// AdminUser represents a backend user account. A populated session always
// satisfies IsAdminRole.
type AdminUser struct {
	ID                 int    `json:"id"`
	Email              string `json:"email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Mobile             string `json:"mobile,omitempty"`
	Role               string `json:"role"`
	IsAdmin            bool   `json:"is_admin"`
	IsActive           bool   `json:"is_active"`
	Gender             string `json:"gender,omitempty"`
	MaritalStatus      string `json:"marital_status,omitempty"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	InterestedServices string `json:"interested_services,omitempty"`
	LastActivityType   string `json:"last_activity_type,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
	UpdatedAt          string `json:"updated_at,omitempty"`
}

// DisplayName returns the user's full name
func (u AdminUser) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdminRole reports whether the account holds the administrative role.
// Both flags must agree; a 200 login response without them is not enough.
func (u AdminUser) IsAdminRole() bool {
	return u.IsAdmin && u.Role == "admin"
}

// loginRequest represents a login request
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userEnvelope wraps responses of the shape {"user": {...}}
type userEnvelope struct {
	User *AdminUser `json:"user"`
}

// Login authenticates against the backend; the session cookie lands in the
// client's jar. Role checking is the session store's concern, not ours.
func (c *Client) Login(ctx context.Context, email, password string) (*AdminUser, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var envelope userEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.User, nil
}

// CheckAuth revalidates the current session cookie against the backend
func (c *Client) CheckAuth(ctx context.Context) (*AdminUser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/auth/check-auth", nil)
	if err != nil {
		return nil, err
	}

	var envelope userEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.User, nil
}

// Logout notifies the backend that the session ends. Callers treat this as
// best effort; local state is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/logout", struct{}{})
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
