package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend as an admin",
	Long: `Authenticate against the VedicVision backend with admin credentials.

Credentials can be passed as flags or entered interactively. After a
successful login the session cookie and verified identity are stored
under ~/.vvadmin/ so later commands stay authenticated.

An account without the admin role is rejected even when the password is
correct; nothing is stored in that case.

Examples:
  vvadmin login
  vvadmin login --email admin@vedicvision.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			creds, err := tui.RunLoginForm()
			if err != nil {
				return err
			}
			email, password = creds.Email, creds.Password
		}

		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		user, err := s.store.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", user.DisplayName(), user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	Long: `Notify the backend and remove the stored session cookie and cached
identity. Local state is cleared even when the backend call fails, so
logout always succeeds.

Examples:
  vvadmin logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		s.store.Logout(cmd.Context())

		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current admin identity",
	Long: `Display the identity of the current session after revalidating it
against the backend.

Examples:
  vvadmin whoami
  vvadmin whoami --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		user := s.store.Current()
		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			return formatter.Format(user)
		}

		fmt.Printf("%s <%s>\nrole: %s\n", user.DisplayName(), user.Email, user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "admin email address")
	loginCmd.Flags().String("password", "", "admin password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
