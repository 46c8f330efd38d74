package cmd

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/collection"
	"github.com/vedicvision/vvadmin/internal/editor"
	"github.com/vedicvision/vvadmin/internal/tui"
	"github.com/vedicvision/vvadmin/internal/ux"
)

func activeCategories() map[string]collection.Predicate {
	return map[string]collection.Predicate{
		"all":      func(collection.Record) bool { return true },
		"active":   func(r collection.Record) bool { return r.Bool("is_active") },
		"inactive": func(r collection.Record) bool { return !r.Bool("is_active") },
	}
}

func newPlanView() *collection.View {
	return collection.NewView([]string{"name"}, collection.WithCategories(activeCategories()))
}

var planColumns = []tui.Column{
	{Title: "ID", Field: "id", Width: 6},
	{Title: "Name", Field: "name", Width: 24},
	{Title: "Price", Field: "price", Width: 20, Render: func(r collection.Record) string {
		price, _ := r.Number("price")
		discount, _ := r.Number("discount")
		return ux.FormatDiscount(price, discount)
	}},
	{Title: "Active", Field: "is_active", Width: 8, Render: func(r collection.Record) string {
		return ux.YesNo(r.Bool("is_active"))
	}},
}

type planRows []collection.Record

func (planRows) TableHeaders() []string {
	return []string{"ID", "NAME", "PRICE", "ACTIVE"}
}

func (rows planRows) TableRows() [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		price, _ := r.Number("price")
		discount, _ := r.Number("discount")
		out[i] = []string{
			r.String("id"),
			r.String("name"),
			ux.FormatDiscount(price, discount),
			ux.YesNo(r.Bool("is_active")),
		}
	}
	return out
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage service plans and discounts",
	Long: `Manage the service plans offered to users, including percentage
discounts per plan.

Examples:
  vvadmin plans list
  vvadmin plans create --name Premium --price 499 --feature "Birth chart"
  vvadmin plans discount add 3 --percentage 20 --end-date 2026-12-31
  vvadmin plans discount remove 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans, including inactive ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		plans, err := s.client.ListPlans(cmd.Context())
		if err != nil {
			return err
		}

		view, err := viewFromFlags(cmd, newPlanView())
		if err != nil {
			return err
		}
		records, err := collection.RecordsOf(plans)
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
		return formatter.Format(planRows(view.Rows()))
	},
}

var plansBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse plans interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		browser := tui.NewBrowser(cmd.Context(), "Plans", newPlanView(), planColumns,
			func(ctx context.Context) ([]collection.Record, error) {
				plans, err := s.client.ListPlans(ctx)
				if err != nil {
					return nil, err
				}
				return collection.RecordsOf(plans)
			},
		)

		_, err = tea.NewProgram(browser).Run()
		return err
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		draft := planDraftFromFlags(cmd, editor.NewPlanDraft())
		if err := draft.Submit(cmd.Context(), s.client); err != nil {
			return err
		}
		fmt.Printf("Created plan %q\n", draft.Name)
		return nil
	},
}

var plansUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		current, err := findPlan(cmd.Context(), s.client, id)
		if err != nil {
			return err
		}

		draft := planDraftFromFlags(cmd, editor.PlanDraftFrom(*current))
		if err := draft.Submit(cmd.Context(), s.client); err != nil {
			return err
		}
		fmt.Printf("Updated plan %q\n", draft.Name)
		return nil
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		if !confirm(fmt.Sprintf("Delete plan %d?", id)) {
			fmt.Println("Aborted.")
			return nil
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.DeletePlan(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted plan %d\n", id)
		return nil
	},
}

var plansDiscountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Manage plan discounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var plansDiscountAddCmd = &cobra.Command{
	Use:   "add <plan-id>",
	Short: "Attach a percentage discount to a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		percentage, _ := cmd.Flags().GetString("percentage")
		endDate, _ := cmd.Flags().GetString("end-date")

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		draft := editor.DiscountDraft{PlanID: id, Percentage: percentage, EndDate: endDate}
		if err := draft.Submit(cmd.Context(), s.client); err != nil {
			return err
		}
		fmt.Printf("Added %s%% discount to plan %d\n", percentage, id)
		return nil
	},
}

var plansDiscountRemoveCmd = &cobra.Command{
	Use:   "remove <plan-id>",
	Short: "Remove the discount from a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.RemoveDiscount(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Removed discount from plan %d\n", id)
		return nil
	},
}

type discountRows []api.Discount

func (discountRows) TableHeaders() []string {
	return []string{"PLAN", "DISCOUNT", "ENDS", "ACTIVE"}
}

func (rows discountRows) TableRows() [][]string {
	out := make([][]string, len(rows))
	for i, d := range rows {
		out[i] = []string{
			d.PlanName,
			strconv.FormatFloat(d.DiscountPercentage, 'f', -1, 64) + "%",
			ux.FormatDate(d.EndDate),
			ux.YesNo(d.IsActive),
		}
	}
	return out
}

var discountsCmd = &cobra.Command{
	Use:   "discounts",
	Short: "List active discounts across plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		discounts, err := s.client.ListDiscounts(cmd.Context())
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(discounts)
		}
		return formatter.Format(discountRows(discounts))
	},
}

// planDraftFromFlags overlays plan flags on a draft
func planDraftFromFlags(cmd *cobra.Command, draft *editor.PlanDraft) *editor.PlanDraft {
	if cmd.Flags().Changed("name") {
		draft.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("price") {
		draft.Price, _ = cmd.Flags().GetString("price")
	}
	if cmd.Flags().Changed("feature") {
		draft.Features, _ = cmd.Flags().GetStringArray("feature")
	}
	return draft
}

// findPlan locates one plan in the admin listing
func findPlan(ctx context.Context, client *api.Client, id int) (*api.Plan, error) {
	plans, err := client.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, fmt.Errorf("plan %d not found", id)
}

func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "plan name")
	cmd.Flags().String("price", "", "plan price")
	cmd.Flags().StringArray("feature", nil, "plan feature (repeatable)")
}

func init() {
	addListFlags(plansListCmd)
	addPlanFlags(plansCreateCmd)
	addPlanFlags(plansUpdateCmd)
	plansDiscountAddCmd.Flags().String("percentage", "", "discount percentage (1-100)")
	plansDiscountAddCmd.Flags().String("end-date", "", "discount end date (YYYY-MM-DD)")

	plansDiscountCmd.AddCommand(plansDiscountAddCmd)
	plansDiscountCmd.AddCommand(plansDiscountRemoveCmd)

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansBrowseCmd)
	plansCmd.AddCommand(plansCreateCmd)
	plansCmd.AddCommand(plansUpdateCmd)
	plansCmd.AddCommand(plansDeleteCmd)
	plansCmd.AddCommand(plansDiscountCmd)

	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(discountsCmd)
}
