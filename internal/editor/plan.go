package editor

import (
	"context"
	"strconv"
	"strings"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
)

// PlanDraft is the implicit fixed-schema editor for service plans:
// a name, a decimal price and a list of feature lines.
type PlanDraft struct {
	ID       int
	Name     string
	Price    string
	Features []string
}

// NewPlanDraft returns an empty plan draft with one feature row, matching
// the editor's initial screen
func NewPlanDraft() *PlanDraft {
	return &PlanDraft{Features: []string{""}}
}

// PlanDraftFrom seeds a draft from an existing plan
func PlanDraftFrom(plan api.Plan) *PlanDraft {
	features := make([]string, len(plan.Features))
	copy(features, plan.Features)
	if len(features) == 0 {
		features = []string{""}
	}
	return &PlanDraft{
		ID:       plan.ID,
		Name:     plan.Name,
		Price:    strconv.FormatFloat(plan.Price, 'f', -1, 64),
		Features: features,
	}
}

// AddFeature appends an empty feature row
func (d *PlanDraft) AddFeature() {
	d.Features = append(d.Features, "")
}

// RemoveFeature deletes the feature row at index, keeping at least one row
func (d *PlanDraft) RemoveFeature(index int) {
	if index < 0 || index >= len(d.Features) || len(d.Features) == 1 {
		return
	}
	d.Features = append(d.Features[:index], d.Features[index+1:]...)
}

// UpdateFeature sets the feature row at index
func (d *PlanDraft) UpdateFeature(index int, value string) {
	if index < 0 || index >= len(d.Features) {
		return
	}
	d.Features[index] = value
}

// Validate checks the draft is submittable
func (d *PlanDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New(errors.ErrCodeValidateRecord, "plan name is required")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil {
		return errors.New(errors.ErrCodeValidateRecord, "price must be a number")
	}
	if price < 0 {
		return errors.New(errors.ErrCodeValidateRecord, "price cannot be negative")
	}
	return nil
}

// Payload builds the request body; blank feature rows are filtered out
func (d *PlanDraft) Payload() api.PlanPayload {
	price, _ := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)

	features := make([]string, 0, len(d.Features))
	for _, feature := range d.Features {
		if strings.TrimSpace(feature) != "" {
			features = append(features, feature)
		}
	}

	return api.PlanPayload{
		Name:     d.Name,
		Price:    price,
		Features: features,
	}
}

// Submit dispatches create or update depending on whether the draft has
// an existing id
func (d *PlanDraft) Submit(ctx context.Context, client *api.Client) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.ID == 0 {
		return client.CreatePlan(ctx, d.Payload())
	}
	return client.UpdatePlan(ctx, d.ID, d.Payload())
}

// DiscountDraft captures a percentage discount for one plan
type DiscountDraft struct {
	PlanID     int
	Percentage string
	EndDate    string
}

// Validate checks the percentage is within 1..100 and the optional end
// date, when present, is not blank-but-whitespace
func (d *DiscountDraft) Validate() error {
	pct, err := strconv.ParseFloat(strings.TrimSpace(d.Percentage), 64)
	if err != nil {
		return errors.New(errors.ErrCodeValidateRecord, "discount percentage must be a number")
	}
	if pct < 1 || pct > 100 {
		return errors.New(errors.ErrCodeValidateRecord, "discount percentage must be between 1 and 100")
	}
	return nil
}

// Submit attaches the discount to its plan
func (d *DiscountDraft) Submit(ctx context.Context, client *api.Client) error {
	if err := d.Validate(); err != nil {
		return err
	}

	pct, _ := strconv.ParseFloat(strings.TrimSpace(d.Percentage), 64)
	payload := api.DiscountPayload{DiscountPercentage: pct}
	if trimmed := strings.TrimSpace(d.EndDate); trimmed != "" {
		payload.EndDate = &trimmed
	}
	return client.AddDiscount(ctx, d.PlanID, payload)
}
