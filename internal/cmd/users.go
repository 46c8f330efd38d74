package cmd

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/collection"
	"github.com/vedicvision/vvadmin/internal/tui"
	"github.com/vedicvision/vvadmin/internal/ux"
)

// userCategories mirrors the filter chips of the admin user screen
func userCategories() map[string]collection.Predicate {
	return map[string]collection.Predicate{
		"all":    func(collection.Record) bool { return true },
		"online": func(r collection.Record) bool { return r.String("last_activity_type") == "Currently Logged In" },
		"active": func(r collection.Record) bool { return r.Bool("is_active") },
		"inactive": func(r collection.Record) bool {
			return !r.Bool("is_active")
		},
	}
}

func newUserView() *collection.View {
	return collection.NewView(
		[]string{"first_name", "last_name", "email", "mobile"},
		collection.WithCategories(userCategories()),
	)
}

var userColumns = []tui.Column{
	{Title: "ID", Field: "id", Width: 6},
	{Title: "Name", Field: "first_name", Width: 22, Render: func(r collection.Record) string {
		return r.String("first_name") + " " + r.String("last_name")
	}},
	{Title: "Email", Field: "email", Width: 30},
	{Title: "Mobile", Field: "mobile", Width: 14},
	{Title: "Active", Field: "is_active", Width: 8, Render: func(r collection.Record) string {
		return ux.YesNo(r.Bool("is_active"))
	}},
	{Title: "Joined", Field: "created_at", Width: 12, Render: func(r collection.Record) string {
		return ux.FormatDate(r.String("created_at"))
	}},
}

// userRows adapts view output for the table formatter
type userRows []collection.Record

func (userRows) TableHeaders() []string {
	return []string{"ID", "NAME", "EMAIL", "MOBILE", "ACTIVE", "JOINED"}
}

func (rows userRows) TableRows() [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.String("id"),
			r.String("first_name") + " " + r.String("last_name"),
			r.String("email"),
			r.String("mobile"),
			ux.YesNo(r.Bool("is_active")),
			ux.FormatDate(r.String("created_at")),
		}
	}
	return out
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage registered users",
	Long: `Inspect the registered user base.

Users are read-only in the admin console: the backend exposes listing
and lookup but no mutation.

Examples:
  vvadmin users list
  vvadmin users list --category online --sort created_at --desc
  vvadmin users browse
  vvadmin users get 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		users, err := s.client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		view, err := viewFromFlags(cmd, newUserView())
		if err != nil {
			return err
		}

		records, err := collection.RecordsOf(users)
		if err != nil {
			return err
		}
		view.SetRecords(records)

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(view.Rows())
		}
		return formatter.Format(userRows(view.Rows()))
	},
}

var usersBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse users interactively",
	Long: `Open the interactive user browser. Number keys sort by column,
"/" filters, tab cycles the all/online/active/inactive categories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		browser := tui.NewBrowser(cmd.Context(), "Users", newUserView(), userColumns,
			func(ctx context.Context) ([]collection.Record, error) {
				users, err := s.client.ListUsers(ctx)
				if err != nil {
					return nil, err
				}
				return collection.RecordsOf(users)
			},
			tui.WithDetail(renderUserDetail),
		)

		_, err = tea.NewProgram(browser).Run()
		return err
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		user, err := s.client.GetUser(cmd.Context(), id)
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(user)
		}

		record, err := collection.RecordOf(user)
		if err != nil {
			return err
		}
		fmt.Println(renderUserDetail(record))
		return nil
	},
}

func renderUserDetail(r collection.Record) string {
	return fmt.Sprintf(
		"%s %s <%s>\nmobile: %s\ngender: %s\nmarital status: %s\nbirth date: %s\nservices: %s\nactive: %s\nlast activity: %s\njoined: %s",
		r.String("first_name"), r.String("last_name"), r.String("email"),
		r.String("mobile"),
		r.String("gender"),
		r.String("marital_status"),
		ux.FormatDate(r.String("date_of_birth")),
		r.String("interested_services"),
		ux.YesNo(r.Bool("is_active")),
		r.String("last_activity_type"),
		ux.FormatDate(r.String("created_at")),
	)
}

// viewFromFlags applies the shared list flags to a view
func viewFromFlags(cmd *cobra.Command, view *collection.View) (*collection.View, error) {
	category, _ := cmd.Flags().GetString("category")
	filter, _ := cmd.Flags().GetString("filter")
	sortField, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")

	if category != "" {
		view.SetCategory(category)
	}
	view.SetFilter(filter)
	if sortField != "" {
		view.SortBy(sortField)
		if desc {
			view.SortBy(sortField)
		}
	}
	return view, nil
}

// addListFlags registers the shared list flags on a list command
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "category filter")
	cmd.Flags().String("filter", "", "text filter over searchable fields")
	cmd.Flags().String("sort", "", "sort field")
	cmd.Flags().Bool("desc", false, "sort descending")
}

func init() {
	addListFlags(usersListCmd)

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersBrowseCmd)
	usersCmd.AddCommand(usersGetCmd)
	rootCmd.AddCommand(usersCmd)
}
