package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/collection"
	"github.com/vedicvision/vvadmin/internal/config"
)

func sampleUserRecords() []collection.Record {
	return []collection.Record{
		{"id": 1, "first_name": "Asha", "last_name": "Rao", "email": "asha@example.com",
			"mobile": "9000000001", "is_active": true, "last_activity_type": "Currently Logged In",
			"created_at": "2026-01-10T08:00:00Z"},
		{"id": 2, "first_name": "Ben", "last_name": "Iyer", "email": "ben@example.com",
			"mobile": "9000000002", "is_active": false, "last_activity_type": "Logged Out",
			"created_at": "2026-02-01T08:00:00Z"},
	}
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "list"}
	addListFlags(cmd)
	return cmd
}

func TestViewFromFlags(t *testing.T) {
	cmd := newListCommand()
	require.NoError(t, cmd.Flags().Set("category", "online"))
	require.NoError(t, cmd.Flags().Set("filter", "asha"))
	require.NoError(t, cmd.Flags().Set("sort", "email"))

	view, err := viewFromFlags(cmd, newUserView())
	require.NoError(t, err)
	view.SetRecords(sampleUserRecords())

	rows := view.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "asha@example.com", rows[0].String("email"))
	assert.Equal(t, "email", view.SortField())
	assert.Equal(t, collection.Ascending, view.Direction())
}

func TestViewFromFlagsDescending(t *testing.T) {
	cmd := newListCommand()
	require.NoError(t, cmd.Flags().Set("sort", "created_at"))
	require.NoError(t, cmd.Flags().Set("desc", "true"))

	view, err := viewFromFlags(cmd, newUserView())
	require.NoError(t, err)
	view.SetRecords(sampleUserRecords())

	assert.Equal(t, collection.Descending, view.Direction())
	assert.Equal(t, "2", view.Rows()[0].String("id"))
}

func TestUserCategoryOnline(t *testing.T) {
	view := newUserView()
	view.SetRecords(sampleUserRecords())
	view.SetCategory("online")

	rows := view.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0].String("first_name"))
}

func TestUserRowsRendering(t *testing.T) {
	rows := userRows(sampleUserRecords()).TableRows()

	require.Len(t, rows, 2)
	assert.Equal(t, "Asha Rao", rows[0][1])
	assert.Equal(t, "yes", rows[0][4])
	assert.Equal(t, "10 Jan 2026", rows[0][5])
	assert.Equal(t, "no", rows[1][4])
}

func TestPlanRowsShowDiscountedPrice(t *testing.T) {
	rows := planRows([]collection.Record{
		{"id": 1, "name": "Premium", "price": 500.0, "discount": 20.0, "is_active": true},
	}).TableRows()

	require.Len(t, rows, 1)
	assert.Equal(t, "₹400 (₹500, -20%)", rows[0][2])
}

func TestSubmissionCategoriesCoverStatuses(t *testing.T) {
	categories := submissionCategories()

	for _, status := range []string{"all", "pending", "processing", "completed", "cancelled"} {
		assert.Contains(t, categories, status)
	}

	record := collection.Record{"status": "pending"}
	assert.True(t, categories["pending"](record))
	assert.False(t, categories["completed"](record))
}

func TestOutputFormatFlagOverridesConfig(t *testing.T) {
	cfg = config.Config{Output: "table"}

	flagOutput = ""
	assert.Equal(t, "table", outputFormat())

	flagOutput = "json"
	assert.Equal(t, "json", outputFormat())
	flagOutput = ""
}

func TestKnownEndpointsAreWellFormed(t *testing.T) {
	for _, e := range knownEndpoints {
		assert.True(t, api.ValidRawMethod(e.Method), e.Method)
		assert.True(t, strings.HasPrefix(e.Path, "/"), e.Path)
		assert.NotEmpty(t, e.Description)
	}
}

func TestRequestBody(t *testing.T) {
	cmd := &cobra.Command{Use: "api"}
	cmd.Flags().String("body", "", "")

	body, err := requestBody(cmd)
	require.NoError(t, err)
	assert.Nil(t, body)

	require.NoError(t, cmd.Flags().Set("body", `{"name":"Basic"}`))
	body, err = requestBody(cmd)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Basic"}`, string(body))

	file := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"price":1499}`), 0o600))
	require.NoError(t, cmd.Flags().Set("body", "@"+file))
	body, err = requestBody(cmd)
	require.NoError(t, err)
	assert.Equal(t, `{"price":1499}`, string(body))

	require.NoError(t, cmd.Flags().Set("body", "@"+file+".missing"))
	_, err = requestBody(cmd)
	require.Error(t, err)
}

func TestRawRowsColumnsSorted(t *testing.T) {
	rows := rawRows([]collection.Record{
		{"id": 1.0, "email": "a@b.com", "password_changed_at": "2026-01-01"},
	})

	assert.Equal(t, []string{"EMAIL", "ID", "PASSWORD_CHANGED_AT"}, rows.TableHeaders())
	require.Len(t, rows.TableRows(), 1)
	assert.Equal(t, []string{"a@b.com", "1", "2026-01-01"}, rows.TableRows()[0])

	assert.Empty(t, rawRows(nil).TableHeaders())
}

func TestRenderDashboardListsEveryStatus(t *testing.T) {
	byStatus := make(map[string]int)
	for i, status := range api.SubmissionStatuses {
		byStatus[status] = i + 1
	}

	out := renderDashboardText(dashboardSummary{
		Users: 3, OnlineUsers: 1, Submissions: 10,
		SubmissionsByKey: byStatus,
	})

	assert.Contains(t, out, "Users:       3 (1 online)")
	for _, status := range api.SubmissionStatuses {
		assert.Contains(t, out, status)
	}
}

func TestRenderSubmissionDetail(t *testing.T) {
	detail := renderSubmissionDetail(collection.Record{
		"id": 42.0, "service_name": "kundli", "status": "pending",
		"submitted_at": "2026-03-01T10:00:00Z",
		"form_data":    map[string]any{"birth_place": "Pune", "name": "Asha"},
		"admin_notes":  "call back",
	})

	assert.Contains(t, detail, "Submission 42")
	assert.Contains(t, detail, "birth_place: Pune")
	assert.Contains(t, detail, "notes: call back")
}
