package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/vedicvision/vvadmin/internal/editor"
)

// Sentinel menu values for the schema editor loop
const (
	schemaActionMeta   = "meta"
	schemaActionAdd    = "add"
	schemaActionDone   = "done"
	schemaActionCancel = "cancel"
)

// RunSchemaEditor drives the interactive loop for editing a form schema
// draft. The caller submits the draft after a clean return; a cancelled
// edit returns huh.ErrUserAborted.
func RunSchemaEditor(draft *editor.SchemaDraft) error {
	for {
		action, err := pickSchemaAction(draft)
		if err != nil {
			return err
		}

		switch {
		case action == schemaActionMeta:
			if err := editSchemaMeta(draft); err != nil {
				return err
			}
		case action == schemaActionAdd:
			draft.AddField()
			if err := editSchemaField(draft, len(draft.Fields)-1); err != nil {
				return err
			}
		case action == schemaActionDone:
			if err := draft.Validate(); err != nil {
				fmt.Println(DefaultStyles().Error.Render(err.Error()))
				continue
			}
			return nil
		case action == schemaActionCancel:
			return huh.ErrUserAborted
		case strings.HasPrefix(action, "field:"):
			var index int
			fmt.Sscanf(action, "field:%d", &index)
			if err := editSchemaField(draft, index); err != nil {
				return err
			}
		}
	}
}

func pickSchemaAction(draft *editor.SchemaDraft) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Edit form details", schemaActionMeta),
	}
	for i, field := range draft.Fields {
		label := field.Label
		if label == "" {
			label = "(unnamed field)"
		}
		options = append(options,
			huh.NewOption(fmt.Sprintf("Edit field: %s (%s)", label, field.Type), fmt.Sprintf("field:%d", i)))
	}
	options = append(options,
		huh.NewOption("Add field", schemaActionAdd),
		huh.NewOption("Save", schemaActionDone),
		huh.NewOption("Cancel", schemaActionCancel),
	)

	var action string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(schemaTitle(draft)).
			Options(options...).
			Value(&action),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

func schemaTitle(draft *editor.SchemaDraft) string {
	if draft.IsNew() {
		return "New service form"
	}
	return "Edit service form: " + draft.DisplayName
}

func editSchemaMeta(draft *editor.SchemaDraft) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Service name").
			Description("Machine identifier, e.g. kundli-analysis").
			Value(&draft.ServiceName).
			Validate(requireValue("service name")),
		huh.NewInput().
			Title("Display name").
			Value(&draft.DisplayName).
			Validate(requireValue("display name")),
		huh.NewText().
			Title("Description").
			Value(&draft.Description),
		huh.NewConfirm().
			Title("Active").
			Value(&draft.IsActive),
	))
	return form.Run()
}

func editSchemaField(draft *editor.SchemaDraft, index int) error {
	if index < 0 || index >= len(draft.Fields) {
		return fmt.Errorf("no field at index %d", index)
	}
	field := &draft.Fields[index]

	typeOptions := make([]huh.Option[string], len(editor.FieldTypes))
	for i, t := range editor.FieldTypes {
		typeOptions[i] = huh.NewOption(t, t)
	}

	remove := false
	options := strings.Join(field.Options, "\n")

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Description("Key used in submission data").
			Value(&field.Name).
			Validate(requireValue("name")),
		huh.NewInput().
			Title("Label").
			Value(&field.Label).
			Validate(requireValue("label")),
		huh.NewSelect[string]().
			Title("Type").
			Options(typeOptions...).
			Value(&field.Type),
		huh.NewInput().
			Title("Placeholder").
			Value(&field.Placeholder),
		huh.NewText().
			Title("Options (one per line)").
			Description("Used by select, checkbox and radio fields").
			Value(&options),
		huh.NewConfirm().
			Title("Required").
			Value(&field.Required),
		huh.NewConfirm().
			Title("Remove this field").
			Value(&remove),
	))

	if err := form.Run(); err != nil {
		return err
	}

	if remove {
		draft.RemoveField(index)
		return nil
	}

	field.Options = nil
	for _, line := range strings.Split(options, "\n") {
		if strings.TrimSpace(line) != "" {
			field.Options = append(field.Options, strings.TrimSpace(line))
		}
	}
	return nil
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
