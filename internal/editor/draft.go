package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
)

// SchemaDraft is a mutable working copy of a dynamic service form
// definition. A zero ID means the draft creates a new form on submit;
// otherwise it updates the existing one.
type SchemaDraft struct {
	ID          int
	ServiceName string
	DisplayName string
	Description string
	IsActive    bool
	Fields      []api.FormField
}

// NewSchemaDraft returns an empty draft for creating a form
func NewSchemaDraft() *SchemaDraft {
	return &SchemaDraft{IsActive: true}
}

// DraftFrom returns a draft seeded from an existing form
func DraftFrom(form api.ServiceForm) *SchemaDraft {
	fields := make([]api.FormField, len(form.FormFields))
	copy(fields, form.FormFields)
	return &SchemaDraft{
		ID:          form.ID,
		ServiceName: form.ServiceName,
		DisplayName: form.DisplayName,
		Description: form.Description,
		IsActive:    form.IsActive,
		Fields:      fields,
	}
}

// IsNew reports whether submitting creates rather than updates
func (d *SchemaDraft) IsNew() bool {
	return d.ID == 0
}

// AddField appends an empty text field to the schema
func (d *SchemaDraft) AddField() {
	d.Fields = append(d.Fields, api.FormField{Type: "text"})
}

// RemoveField deletes the field at index; out-of-range indices are ignored
func (d *SchemaDraft) RemoveField(index int) {
	if index < 0 || index >= len(d.Fields) {
		return
	}
	d.Fields = append(d.Fields[:index], d.Fields[index+1:]...)
}

// UpdateField sets one property of the field at index
func (d *SchemaDraft) UpdateField(index int, property string, value any) error {
	if index < 0 || index >= len(d.Fields) {
		return errors.New(errors.ErrCodeValidateField, fmt.Sprintf("no field at index %d", index))
	}

	field := &d.Fields[index]
	switch property {
	case "name":
		field.Name, _ = value.(string)
	case "label":
		field.Label, _ = value.(string)
	case "type":
		t, _ := value.(string)
		if !ValidFieldType(t) {
			return errors.New(errors.ErrCodeValidateField, fmt.Sprintf("unsupported field type: %s", t))
		}
		field.Type = t
	case "required":
		field.Required, _ = value.(bool)
	case "placeholder":
		field.Placeholder, _ = value.(string)
	default:
		return errors.New(errors.ErrCodeValidateField, fmt.Sprintf("unknown field property: %s", property))
	}
	return nil
}

// AddOption appends an empty option to the field at index
func (d *SchemaDraft) AddOption(fieldIndex int) {
	if fieldIndex < 0 || fieldIndex >= len(d.Fields) {
		return
	}
	d.Fields[fieldIndex].Options = append(d.Fields[fieldIndex].Options, "")
}

// UpdateOption sets the option at optionIndex on the field at fieldIndex
func (d *SchemaDraft) UpdateOption(fieldIndex, optionIndex int, value string) {
	if fieldIndex < 0 || fieldIndex >= len(d.Fields) {
		return
	}
	options := d.Fields[fieldIndex].Options
	if optionIndex < 0 || optionIndex >= len(options) {
		return
	}
	options[optionIndex] = value
}

// RemoveOption deletes the option at optionIndex on the field at fieldIndex
func (d *SchemaDraft) RemoveOption(fieldIndex, optionIndex int) {
	if fieldIndex < 0 || fieldIndex >= len(d.Fields) {
		return
	}
	options := d.Fields[fieldIndex].Options
	if optionIndex < 0 || optionIndex >= len(options) {
		return
	}
	d.Fields[fieldIndex].Options = append(options[:optionIndex], options[optionIndex+1:]...)
}

// Validate checks the draft is submittable: service and display names
// present, every field fully specified with a unique non-empty name, and
// option-bearing field types carrying at least one non-empty option.
func (d *SchemaDraft) Validate() error {
	if strings.TrimSpace(d.ServiceName) == "" {
		return errors.New(errors.ErrCodeValidateRecord, "service name is required")
	}
	if strings.TrimSpace(d.DisplayName) == "" {
		return errors.New(errors.ErrCodeValidateRecord, "display name is required")
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, field := range d.Fields {
		if !fieldComplete(field) {
			return errors.New(errors.ErrCodeValidateField,
				fmt.Sprintf("field %d needs a name, label and type", i+1))
		}
		if !ValidFieldType(field.Type) {
			return errors.New(errors.ErrCodeValidateField,
				fmt.Sprintf("field %q has unsupported type %q", field.Name, field.Type))
		}
		if seen[field.Name] {
			return errors.New(errors.ErrCodeValidateField,
				fmt.Sprintf("duplicate field name: %s", field.Name))
		}
		seen[field.Name] = true

		if NeedsOptions(field.Type) && len(nonEmptyOptions(field)) == 0 {
			return errors.New(errors.ErrCodeValidateOptions,
				fmt.Sprintf("field %q needs at least one option", field.Name))
		}
	}
	return nil
}

// Payload builds the request body. Fields missing a name, label or type
// are silently dropped rather than rejected; this lenient-submit policy
// matches the backend's expectations.
func (d *SchemaDraft) Payload() api.ServiceFormPayload {
	fields := make([]api.FormField, 0, len(d.Fields))
	for _, field := range d.Fields {
		if fieldComplete(field) {
			fields = append(fields, field)
		}
	}
	return api.ServiceFormPayload{
		ServiceName: d.ServiceName,
		DisplayName: d.DisplayName,
		Description: d.Description,
		FormFields:  fields,
		IsActive:    d.IsActive,
	}
}

// Submit dispatches create or update depending on whether the draft has
// an existing id. On failure the draft is left intact for correction.
func (d *SchemaDraft) Submit(ctx context.Context, client *api.Client) error {
	payload := d.Payload()
	if d.IsNew() {
		return client.CreateForm(ctx, payload)
	}
	return client.UpdateForm(ctx, d.ID, payload)
}
