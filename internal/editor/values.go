package editor

import (
	"fmt"
	"strings"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
)

// ValueDraft captures concrete values against a form's declared schema,
// e.g. when previewing what a customer-facing intake form collects.
type ValueDraft struct {
	Fields []api.FormField
	Values map[string]any
}

// NewValueDraft returns an empty draft over the given schema
func NewValueDraft(fields []api.FormField) *ValueDraft {
	return &ValueDraft{
		Fields: fields,
		Values: make(map[string]any),
	}
}

// Set records a value for the named field
func (d *ValueDraft) Set(name string, value any) {
	d.Values[name] = value
}

// Validate checks every required field carries a non-empty value and
// every select/radio value is one of the declared options
func (d *ValueDraft) Validate() error {
	for _, field := range d.Fields {
		value, present := d.Values[field.Name]

		if field.Required && (!present || isEmptyValue(value)) {
			return errors.New(errors.ErrCodeValidateRecord,
				fmt.Sprintf("%s is required", field.Label))
		}
		if !present || isEmptyValue(value) {
			continue
		}

		if field.Type == "select" || field.Type == "radio" {
			s, _ := value.(string)
			if !containsOption(field.Options, s) {
				return errors.New(errors.ErrCodeValidateRecord,
					fmt.Sprintf("%s must be one of the declared options", field.Label))
			}
		}
	}
	return nil
}

// Payload returns the values keyed by field name, dropping entries for
// fields the schema no longer declares
func (d *ValueDraft) Payload() map[string]any {
	declared := make(map[string]bool, len(d.Fields))
	for _, field := range d.Fields {
		declared[field.Name] = true
	}

	payload := make(map[string]any, len(d.Values))
	for name, value := range d.Values {
		if declared[name] {
			payload[name] = value
		}
	}
	return payload
}

func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case []string:
		return len(value) == 0
	default:
		return false
	}
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
