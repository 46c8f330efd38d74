package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/ux"
)

// dashboardSummary aggregates the counts shown on the admin landing screen
type dashboardSummary struct {
	Users            int            `json:"users"`
	OnlineUsers      int            `json:"online_users"`
	ActivePlans      int            `json:"active_plans"`
	ActiveDiscounts  int            `json:"active_discounts"`
	ActiveForms      int            `json:"active_forms"`
	Submissions      int            `json:"submissions"`
	SubmissionsByKey map[string]int `json:"submissions_by_status"`
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show an overview of the admin resources",
	Long: `Fetch every admin collection and print the headline counts: users
online, active plans and discounts, live forms, and the submission
queue broken down by status.

Examples:
  vvadmin dashboard
  vvadmin dashboard --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		users, err := s.client.ListUsers(ctx)
		if err != nil {
			return err
		}
		plans, err := s.client.ListPlans(ctx)
		if err != nil {
			return err
		}
		discounts, err := s.client.ListDiscounts(ctx)
		if err != nil {
			return err
		}
		forms, err := s.client.ListForms(ctx)
		if err != nil {
			return err
		}
		submissions, err := s.client.ListSubmissions(ctx)
		if err != nil {
			return err
		}

		summary := dashboardSummary{
			Users:            len(users),
			Submissions:      len(submissions),
			SubmissionsByKey: make(map[string]int),
		}
		for _, u := range users {
			if u.LastActivityType == "Currently Logged In" {
				summary.OnlineUsers++
			}
		}
		for _, p := range plans {
			if p.IsActive {
				summary.ActivePlans++
			}
		}
		for _, d := range discounts {
			if d.IsActive {
				summary.ActiveDiscounts++
			}
		}
		for _, f := range forms {
			if f.IsActive {
				summary.ActiveForms++
			}
		}
		for _, sub := range submissions {
			summary.SubmissionsByKey[sub.Status]++
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(summary)
		}

		fmt.Print(renderDashboardText(summary))
		return nil
	},
}

func renderDashboardText(summary dashboardSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Users:       %d (%d online)\n", summary.Users, summary.OnlineUsers)
	fmt.Fprintf(&b, "Plans:       %d active\n", summary.ActivePlans)
	fmt.Fprintf(&b, "Discounts:   %d active\n", summary.ActiveDiscounts)
	fmt.Fprintf(&b, "Forms:       %d active\n", summary.ActiveForms)
	fmt.Fprintf(&b, "Submissions: %d\n", summary.Submissions)
	for _, status := range api.SubmissionStatuses {
		if count := summary.SubmissionsByKey[status]; count > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", ux.StatusBadge(status), count)
		}
	}
	return b.String()
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend reachability",
	Long: `Ping the backend health endpoint. Does not require a session.

Examples:
  vvadmin health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.Health(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Backend %s is healthy\n", cfg.APIURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(healthCmd)
}
