package api

import (
	"context"
	"fmt"
	"net/http"
)

// Plan represents a service plan
type Plan struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Features  []string `json:"features"`
	Discount  float64  `json:"discount,omitempty"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// DiscountedPrice applies the plan's percentage discount, if any
func (p Plan) DiscountedPrice() float64 {
	if p.Discount == 0 {
		return p.Price
	}
	return p.Price - (p.Price * p.Discount / 100)
}

// Discount represents an active plan discount
type Discount struct {
	ID                 int     `json:"id"`
	PlanID             int     `json:"plan_id"`
	PlanName           string  `json:"plan_name"`
	DiscountPercentage float64 `json:"discount_percentage"`
	StartDate          string  `json:"start_date,omitempty"`
	EndDate            string  `json:"end_date,omitempty"`
	IsActive           bool    `json:"is_active"`
}

// PlanPayload is the create/update request body for a plan
type PlanPayload struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
}

// DiscountPayload is the request body for adding a plan discount
type DiscountPayload struct {
	DiscountPercentage float64 `json:"discount_percentage"`
	EndDate            *string `json:"end_date"`
}

type plansEnvelope struct {
	Plans []Plan `json:"plans"`
}

type discountsEnvelope struct {
	Discounts []Discount `json:"discounts"`
}

// ListPlans fetches every plan including inactive ones
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/plans/admin/all", nil)
	if err != nil {
		return nil, err
	}

	var envelope plansEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Plans, nil
}

// CreatePlan creates a new plan
func (c *Client) CreatePlan(ctx context.Context, payload PlanPayload) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/plans", payload)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// UpdatePlan updates an existing plan
func (c *Client) UpdatePlan(ctx context.Context, id int, payload PlanPayload) error {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/plans/%d", id), payload)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// DeletePlan removes a plan. Deleting an already-deleted plan surfaces the
// backend's not-found error; callers re-fetch the collection afterward.
func (c *Client) DeletePlan(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/plans/%d", id), nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// AddDiscount attaches a percentage discount to a plan
func (c *Client) AddDiscount(ctx context.Context, planID int, payload DiscountPayload) error {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/plans/%d/discount", planID), payload)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// RemoveDiscount removes the discount from a plan
func (c *Client) RemoveDiscount(ctx context.Context, planID int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/plans/%d/discount", planID), nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// ListDiscounts fetches all active discounts across plans
func (c *Client) ListDiscounts(ctx context.Context) ([]Discount, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/plans/admin/discounts", nil)
	if err != nil {
		return nil, err
	}

	var envelope discountsEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Discounts, nil
}
