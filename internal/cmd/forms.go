package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/collection"
	"github.com/vedicvision/vvadmin/internal/editor"
	"github.com/vedicvision/vvadmin/internal/tui"
	"github.com/vedicvision/vvadmin/internal/ux"
)

func newFormView() *collection.View {
	return collection.NewView(
		[]string{"service_name", "display_name"},
		collection.WithCategories(activeCategories()),
	)
}

var formColumns = []tui.Column{
	{Title: "ID", Field: "id", Width: 6},
	{Title: "Service", Field: "service_name", Width: 22},
	{Title: "Name", Field: "display_name", Width: 26},
	{Title: "Active", Field: "is_active", Width: 8, Render: func(r collection.Record) string {
		return ux.YesNo(r.Bool("is_active"))
	}},
}

type formRows []api.ServiceForm

func (formRows) TableHeaders() []string {
	return []string{"ID", "SERVICE", "NAME", "FIELDS", "ACTIVE"}
}

func (rows formRows) TableRows() [][]string {
	out := make([][]string, len(rows))
	for i, f := range rows {
		out[i] = []string{
			strconv.Itoa(f.ID),
			f.ServiceName,
			f.DisplayName,
			strconv.Itoa(len(f.FormFields)),
			ux.YesNo(f.IsActive),
		}
	}
	return out
}

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Manage dynamic service forms",
	Long: `Manage the dynamic intake forms attached to services. A form is a
named schema of typed fields; the customer-facing site renders it and
submissions land in 'vvadmin submissions'.

The create and edit commands open an interactive schema editor. Fields
left without a name, label or type are dropped on save rather than
blocking it.

Examples:
  vvadmin forms list
  vvadmin forms create
  vvadmin forms edit 5
  vvadmin forms preview 5
  vvadmin forms delete 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var formsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List service forms",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		forms, err := s.client.ListForms(cmd.Context())
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(forms)
		}
		return formatter.Format(formRows(forms))
	},
}

var formsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse service forms interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		browser := tui.NewBrowser(cmd.Context(), "Service Forms", newFormView(), formColumns,
			func(ctx context.Context) ([]collection.Record, error) {
				forms, err := s.client.ListForms(ctx)
				if err != nil {
					return nil, err
				}
				return collection.RecordsOf(forms)
			},
			tui.WithDetail(renderFormDetail),
		)

		_, err = tea.NewProgram(browser).Run()
		return err
	},
}

var formsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a service form in the schema editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		draft := editor.NewSchemaDraft()
		if err := tui.RunSchemaEditor(draft); err != nil {
			if err == huh.ErrUserAborted {
				fmt.Println("Aborted.")
				return nil
			}
			return err
		}

		if err := draft.Submit(cmd.Context(), s.client); err != nil {
			return err
		}
		fmt.Printf("Created form %q\n", draft.DisplayName)
		return nil
	},
}

var formsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a service form in the schema editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid form id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		form, err := findForm(cmd.Context(), s.client, id)
		if err != nil {
			return err
		}

		draft := editor.DraftFrom(*form)
		if err := tui.RunSchemaEditor(draft); err != nil {
			if err == huh.ErrUserAborted {
				fmt.Println("Aborted.")
				return nil
			}
			return err
		}

		if err := draft.Submit(cmd.Context(), s.client); err != nil {
			return err
		}
		fmt.Printf("Updated form %q\n", draft.DisplayName)
		return nil
	},
}

var formsPreviewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Fill a form the way the customer site renders it",
	Long: `Render a form's schema as an interactive form and validate sample
values against it. Nothing is submitted to the backend; the collected
values are printed for inspection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid form id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		form, err := findForm(cmd.Context(), s.client, id)
		if err != nil {
			return err
		}

		draft := editor.NewValueDraft(form.FormFields)
		if err := tui.BuildValueForm(form.FormFields, draft).Run(); err != nil {
			if err == huh.ErrUserAborted {
				fmt.Println("Aborted.")
				return nil
			}
			return err
		}

		if err := draft.Validate(); err != nil {
			return err
		}

		formatter, err := ux.NewFormatter("json", nil)
		if err != nil {
			return err
		}
		return formatter.Format(draft.Payload())
	},
}

var formsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a service form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid form id: %s", args[0])
		}

		if !confirm(fmt.Sprintf("Delete form %d?", id)) {
			fmt.Println("Aborted.")
			return nil
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.DeleteForm(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted form %d\n", id)
		return nil
	},
}

func renderFormDetail(r collection.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\nactive: %s\n",
		r.String("display_name"), r.String("service_name"), ux.YesNo(r.Bool("is_active")))
	if description := r.String("description"); description != "" {
		fmt.Fprintf(&b, "%s\n", description)
	}

	if fields, ok := r["form_fields"].([]any); ok {
		fmt.Fprintf(&b, "fields:\n")
		for _, raw := range fields {
			field, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			record := collection.Record(field)
			line := fmt.Sprintf("  %s (%s)", record.String("label"), record.String("type"))
			if record.Bool("required") {
				line += " *"
			}
			fmt.Fprintf(&b, "%s\n", line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// findForm locates one form in the listing
func findForm(ctx context.Context, client *api.Client, id int) (*api.ServiceForm, error) {
	forms, err := client.ListForms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].ID == id {
			return &forms[i], nil
		}
	}
	return nil, fmt.Errorf("form %d not found", id)
}

func init() {
	formsCmd.AddCommand(formsListCmd)
	formsCmd.AddCommand(formsBrowseCmd)
	formsCmd.AddCommand(formsCreateCmd)
	formsCmd.AddCommand(formsEditCmd)
	formsCmd.AddCommand(formsPreviewCmd)
	formsCmd.AddCommand(formsDeleteCmd)
	rootCmd.AddCommand(formsCmd)
}
