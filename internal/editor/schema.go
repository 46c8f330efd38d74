// Package editor implements the reusable create/update form models: the
// schema draft used to edit what a dynamic form looks like, and value
// drafts used to capture and validate concrete field values.
package editor

import (
	"strings"

	"github.com/vedicvision/vvadmin/internal/api"
)

// FieldTypes lists the supported input types in display order
var FieldTypes = []string{
	"text", "email", "tel", "number", "date", "time",
	"select", "textarea", "checkbox", "radio",
}

// ValidFieldType reports whether t is a supported field type
func ValidFieldType(t string) bool {
	for _, ft := range FieldTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// NeedsOptions reports whether fields of type t carry an option list
func NeedsOptions(t string) bool {
	return t == "select" || t == "checkbox" || t == "radio"
}

// fieldComplete reports whether a field carries the name/label/type
// triple required for submission
func fieldComplete(f api.FormField) bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Label) != "" &&
		strings.TrimSpace(f.Type) != ""
}

// nonEmptyOptions returns the field's options with blanks removed
func nonEmptyOptions(f api.FormField) []string {
	options := make([]string, 0, len(f.Options))
	for _, option := range f.Options {
		if strings.TrimSpace(option) != "" {
			options = append(options, option)
		}
	}
	return options
}
