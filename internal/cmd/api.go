package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
)

// knownEndpoint is a preset of the request console
type knownEndpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var knownEndpoints = []knownEndpoint{
	{"GET", "/health", "check server status"},
	{"POST", "/auth/login", "authenticate user login"},
	{"POST", "/auth/logout", "end user session"},
	{"GET", "/auth/check-auth", "verify authentication"},
	{"GET", "/auth/profile", "get current user profile"},
	{"POST", "/auth/register", "create new user account"},
	{"POST", "/auth/forgot-password", "send password reset email"},
	{"POST", "/auth/refresh-token", "refresh access token"},
	{"GET", "/auth/admin/users", "retrieve all users"},
	{"GET", "/auth/admin/users/1", "get specific user details"},
	{"GET", "/plans", "get active plans with discounts"},
	{"GET", "/plans/1", "get specific plan details"},
	{"GET", "/plans/admin/all", "get all plans including inactive"},
	{"POST", "/plans", "create a new service plan"},
	{"PUT", "/plans/1", "update existing plan"},
	{"DELETE", "/plans/1", "soft delete plan"},
	{"POST", "/plans/bulk", "insert multiple plans at once"},
	{"GET", "/plans/admin/discounts", "retrieve all discount records"},
	{"POST", "/plans/1/discount", "apply discount to specific plan"},
	{"DELETE", "/plans/1/discount", "remove active discount from plan"},
}

type endpointRows []knownEndpoint

func (endpointRows) TableHeaders() []string {
	return []string{"METHOD", "PATH", "DESCRIPTION"}
}

func (rows endpointRows) TableRows() [][]string {
	out := make([][]string, len(rows))
	for i, e := range rows {
		out[i] = []string{e.Method, e.Path, e.Description}
	}
	return out
}

var apiCmd = &cobra.Command{
	Use:   "api <method> <path>",
	Short: "Send a raw request to the backend",
	Long: `Request console for poking backend endpoints directly. The request
carries the stored session cookie, so admin endpoints work after login.
The response is printed with its status whether or not the call
succeeded.

The body flag accepts inline JSON or @file.

Examples:
  vvadmin api GET /plans/admin/all
  vvadmin api POST /plans --body '{"name":"Basic Kundli","price":1499,"features":["Personalized Kundli PDF"]}'
  vvadmin api PUT /plans/3 --body @plan.json
  vvadmin api DELETE /plans/3/discount
  vvadmin api endpoints`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := strings.ToUpper(args[0])
		if !api.ValidRawMethod(method) {
			return errors.New(errors.ErrCodeValidateRecord,
				fmt.Sprintf("unsupported method %q (valid: %s)", args[0], strings.Join(api.RawMethods, ", ")))
		}
		path := args[1]
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		body, err := requestBody(cmd)
		if err != nil {
			return err
		}

		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := s.client.Raw(cmd.Context(), method, path, body)
		if err != nil {
			return err
		}

		if outputFormat() == "json" {
			formatter, err := newFormatter()
			if err != nil {
				return err
			}
			out := map[string]any{"status": resp.Status, "status_text": resp.StatusText}
			if json.Valid(resp.Body) {
				out["body"] = json.RawMessage(resp.Body)
			} else {
				out["body"] = string(resp.Body)
			}
			return formatter.Format(out)
		}

		fmt.Printf("%d %s\n", resp.Status, resp.StatusText)
		if pretty := resp.PrettyBody(); pretty != "" {
			fmt.Println(pretty)
		}
		return nil
	},
}

var apiEndpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List known backend endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(knownEndpoints)
		}
		return formatter.Format(endpointRows(knownEndpoints))
	},
}

// requestBody resolves the --body flag, dereferencing @file arguments
func requestBody(cmd *cobra.Command) ([]byte, error) {
	raw, _ := cmd.Flags().GetString("body")
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "cannot read request body file", err)
		}
		return data, nil
	}
	return []byte(raw), nil
}

func init() {
	apiCmd.Flags().String("body", "", "JSON request body, inline or @file")

	apiCmd.AddCommand(apiEndpointsCmd)
	rootCmd.AddCommand(apiCmd)
}
