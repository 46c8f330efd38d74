package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/editor"
)

// BuildValueForm assembles a huh form from a backend field schema. Each
// submitted value lands in the draft keyed by field name; option-bearing
// types render as selects, everything else as typed inputs.
func BuildValueForm(fields []api.FormField, draft *editor.ValueDraft) *huh.Form {
	huhFields := make([]huh.Field, 0, len(fields))

	for _, field := range fields {
		huhFields = append(huhFields, buildValueField(field, draft))
	}
	return huh.NewForm(huh.NewGroup(huhFields...))
}

func buildValueField(field api.FormField, draft *editor.ValueDraft) huh.Field {
	title := field.Label
	if field.Required {
		title += " *"
	}

	switch field.Type {
	case "select", "radio":
		value := new(string)
		options := make([]huh.Option[string], len(field.Options))
		for i, option := range field.Options {
			options[i] = huh.NewOption(option, option)
		}
		return huh.NewSelect[string]().
			Key(field.Name).
			Title(title).
			Options(options...).
			Value(value).
			Validate(func(s string) error {
				draft.Set(field.Name, s)
				if field.Required && s == "" {
					return fmt.Errorf("%s is required", field.Label)
				}
				return nil
			})

	case "checkbox":
		value := new([]string)
		options := make([]huh.Option[string], len(field.Options))
		for i, option := range field.Options {
			options[i] = huh.NewOption(option, option)
		}
		return huh.NewMultiSelect[string]().
			Key(field.Name).
			Title(title).
			Options(options...).
			Value(value).
			Validate(func(selected []string) error {
				draft.Set(field.Name, selected)
				if field.Required && len(selected) == 0 {
					return fmt.Errorf("%s is required", field.Label)
				}
				return nil
			})

	case "textarea":
		value := new(string)
		return huh.NewText().
			Key(field.Name).
			Title(title).
			Placeholder(field.Placeholder).
			Value(value).
			Validate(func(s string) error {
				draft.Set(field.Name, s)
				if field.Required && strings.TrimSpace(s) == "" {
					return fmt.Errorf("%s is required", field.Label)
				}
				return nil
			})

	default:
		value := new(string)
		return huh.NewInput().
			Key(field.Name).
			Title(title).
			Placeholder(field.Placeholder).
			Value(value).
			Validate(func(s string) error {
				draft.Set(field.Name, s)
				if field.Required && strings.TrimSpace(s) == "" {
					return fmt.Errorf("%s is required", field.Label)
				}
				if field.Type == "number" && strings.TrimSpace(s) != "" {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("%s must be a number", field.Label)
					}
				}
				return nil
			})
	}
}
