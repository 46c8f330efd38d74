package api

import (
	"context"
	"fmt"
	"net/http"
)

// Submission status values
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// SubmissionStatuses lists the valid status values in display order
var SubmissionStatuses = []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// ValidStatus reports whether s is a recognized submission status
func ValidStatus(s string) bool {
	for _, status := range SubmissionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Submission is one filled-out service form
type Submission struct {
	ID          int            `json:"id"`
	UserID      int            `json:"user_id"`
	ServiceName string         `json:"service_name"`
	FormData    map[string]any `json:"form_data"`
	ContactInfo map[string]any `json:"contact_info,omitempty"`
	Status      string         `json:"status"`
	AdminNotes  string         `json:"admin_notes,omitempty"`
	SubmittedAt string         `json:"submitted_at,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}

// submissionsEnvelope wraps {"data": {"submissions": [...]}}
type submissionsEnvelope struct {
	Data struct {
		Submissions []Submission `json:"submissions"`
	} `json:"data"`
}

// submissionEnvelope wraps {"data": {...}}
type submissionEnvelope struct {
	Data *Submission `json:"data"`
}

// ListSubmissions fetches all form submissions
func (c *Client) ListSubmissions(ctx context.Context) ([]Submission, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/admin/form-submissions", nil)
	if err != nil {
		return nil, err
	}

	var envelope submissionsEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Submissions, nil
}

// GetSubmission fetches a single submission with its form data
func (c *Client) GetSubmission(ctx context.Context, id int) (*Submission, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/admin/form-submissions/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var envelope submissionEnvelope
	if err := c.parseResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// SetSubmissionStatus updates a submission's processing status
func (c *Client) SetSubmissionStatus(ctx context.Context, id int, status string) error {
	resp, err := c.doRequest(ctx, http.MethodPut,
		fmt.Sprintf("/admin/form-submissions/%d/status", id),
		map[string]string{"status": status})
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// SetSubmissionNotes updates the admin notes on a submission
func (c *Client) SetSubmissionNotes(ctx context.Context, id int, notes string) error {
	resp, err := c.doRequest(ctx, http.MethodPut,
		fmt.Sprintf("/admin/form-submissions/%d/notes", id),
		map[string]string{"admin_notes": notes})
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// SendWhatsApp asks the backend to resend the submission confirmation
// over WhatsApp. Fire and forget; the backend owns delivery.
func (c *Client) SendWhatsApp(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodPost,
		fmt.Sprintf("/admin/form-submissions/%d/send-whatsapp", id), nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
