package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/collection"
	"github.com/vedicvision/vvadmin/internal/errors"
	"github.com/vedicvision/vvadmin/internal/tui"
	"github.com/vedicvision/vvadmin/internal/ux"
)

// submissionCategories buckets submissions by workflow status
func submissionCategories() map[string]collection.Predicate {
	categories := map[string]collection.Predicate{
		"all": func(collection.Record) bool { return true },
	}
	for _, status := range api.SubmissionStatuses {
		status := status
		categories[status] = func(r collection.Record) bool {
			return r.String("status") == status
		}
	}
	return categories
}

func newSubmissionView() *collection.View {
	return collection.NewView(
		[]string{"service_name", "status", "admin_notes"},
		collection.WithCategories(submissionCategories()),
	)
}

var submissionColumns = []tui.Column{
	{Title: "ID", Field: "id", Width: 6},
	{Title: "Service", Field: "service_name", Width: 22},
	{Title: "Status", Field: "status", Width: 12, Render: func(r collection.Record) string {
		return ux.StatusBadge(r.String("status"))
	}},
	{Title: "Submitted", Field: "submitted_at", Width: 12, Render: func(r collection.Record) string {
		return ux.FormatDate(r.String("submitted_at"))
	}},
	{Title: "Notes", Field: "admin_notes", Width: 28, Render: func(r collection.Record) string {
		return ux.Truncate(r.String("admin_notes"), 28)
	}},
}

type submissionRows []collection.Record

func (submissionRows) TableHeaders() []string {
	return []string{"ID", "SERVICE", "STATUS", "SUBMITTED", "NOTES"}
}

func (rows submissionRows) TableRows() [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.String("id"),
			r.String("service_name"),
			r.String("status"),
			ux.FormatDate(r.String("submitted_at")),
			ux.Truncate(r.String("admin_notes"), 40),
		}
	}
	return out
}

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Manage form submissions",
	Long: `Work the queue of filled-out service forms: inspect submitted data,
move submissions through the pending/processing/completed/cancelled
workflow, attach admin notes, and resend WhatsApp notifications.

Examples:
  vvadmin submissions list --category pending
  vvadmin submissions get 42
  vvadmin submissions status 42 completed
  vvadmin submissions notes 42 "Called the customer"
  vvadmin submissions whatsapp 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List form submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		submissions, err := s.client.ListSubmissions(cmd.Context())
		if err != nil {
			return err
		}

		view, err := viewFromFlags(cmd, newSubmissionView())
		if err != nil {
			return err
		}
		records, err := collection.RecordsOf(submissions)
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
		return formatter.Format(submissionRows(view.Rows()))
	},
}

var submissionsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse submissions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		browser := tui.NewBrowser(cmd.Context(), "Form Submissions", newSubmissionView(), submissionColumns,
			func(ctx context.Context) ([]collection.Record, error) {
				submissions, err := s.client.ListSubmissions(ctx)
				if err != nil {
					return nil, err
				}
				return collection.RecordsOf(submissions)
			},
			tui.WithDetail(renderSubmissionDetail),
		)

		_, err = tea.NewProgram(browser).Run()
		return err
	},
}

var submissionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one submission with its form data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid submission id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		submission, err := s.client.GetSubmission(cmd.Context(), id)
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(submission)
		}

		record, err := collection.RecordOf(submission)
		if err != nil {
			return err
		}
		fmt.Println(renderSubmissionDetail(record))
		return nil
	},
}

var submissionsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move a submission through the workflow",
	Long: `Set a submission's workflow status. Valid statuses: pending,
processing, completed, cancelled.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid submission id: %s", args[0])
		}

		status := strings.ToLower(args[1])
		if !api.ValidStatus(status) {
			return errors.New(errors.ErrCodeValidateRecord,
				fmt.Sprintf("invalid status %q (valid: %s)", args[1], strings.Join(api.SubmissionStatuses, ", ")))
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.SetSubmissionStatus(cmd.Context(), id, status); err != nil {
			return err
		}
		fmt.Printf("Submission %d is now %s\n", id, status)
		return nil
	},
}

var submissionsNotesCmd = &cobra.Command{
	Use:   "notes <id> <text>",
	Short: "Attach admin notes to a submission",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid submission id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.SetSubmissionNotes(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		fmt.Printf("Saved notes for submission %d\n", id)
		return nil
	},
}

var submissionsWhatsAppCmd = &cobra.Command{
	Use:   "whatsapp <id>",
	Short: "Resend the WhatsApp notification for a submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid submission id: %s", args[0])
		}

		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.client.SendWhatsApp(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("WhatsApp notification queued for submission %d\n", id)
		return nil
	},
}

func renderSubmissionDetail(r collection.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Submission %s · %s · %s\n",
		r.String("id"), r.String("service_name"), r.String("status"))
	fmt.Fprintf(&b, "submitted: %s\n", ux.FormatDate(r.String("submitted_at")))

	if data, ok := r["form_data"].(map[string]any); ok && len(data) > 0 {
		fmt.Fprintf(&b, "form data:\n")
		keys := make([]string, 0, len(data))
		for key := range data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		record := collection.Record(data)
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", key, record.String(key))
		}
	}

	if notes := r.String("admin_notes"); notes != "" {
		fmt.Fprintf(&b, "notes: %s\n", notes)
	}
	return strings.TrimRight(b.String(), "\n")
}

func init() {
	addListFlags(submissionsListCmd)

	submissionsCmd.AddCommand(submissionsListCmd)
	submissionsCmd.AddCommand(submissionsBrowseCmd)
	submissionsCmd.AddCommand(submissionsGetCmd)
	submissionsCmd.AddCommand(submissionsStatusCmd)
	submissionsCmd.AddCommand(submissionsNotesCmd)
	submissionsCmd.AddCommand(submissionsWhatsAppCmd)
	rootCmd.AddCommand(submissionsCmd)
}
