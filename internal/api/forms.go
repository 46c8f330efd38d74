package api

import (
	"context"
	"fmt"
	"net/http"
)

// FormField is one input in a dynamic service form schema. Ordering within
// FormFields is significant; names are unique within a schema.
type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// ServiceForm is a dynamic intake form definition
type ServiceForm struct {
	ID          int         `json:"id"`
	ServiceName string      `json:"service_name"`
	DisplayName string      `json:"display_name"`
	Description string      `json:"description"`
	FormFields  []FormField `json:"form_fields"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   string      `json:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// ServiceFormPayload is the create/update request body for a form schema
type ServiceFormPayload struct {
	ServiceName string      `json:"service_name"`
	DisplayName string      `json:"display_name"`
	Description string      `json:"description"`
	FormFields  []FormField `json:"form_fields"`
	IsActive    bool        `json:"is_active"`
}

// formsEnvelope wraps {"data": [...]}
type formsEnvelope struct {
	Data []ServiceForm `json:"data"`
}

// ListForms fetches all dynamic service forms
func (c *Client) ListForms(ctx context.Context) ([]ServiceForm, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/admin/forms", nil)
	if err != nil {
		return nil, err
	}

	var envelope formsEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// CreateForm creates a new form schema
func (c *Client) CreateForm(ctx context.Context, payload ServiceFormPayload) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/admin/forms", payload)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// UpdateForm updates an existing form schema
func (c *Client) UpdateForm(ctx context.Context, id int, payload ServiceFormPayload) error {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/admin/forms/%d", id), payload)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// DeleteForm removes a form schema
func (c *Client) DeleteForm(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/admin/forms/%d", id), nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
