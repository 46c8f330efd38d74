// Package cmd wires the vvadmin command tree. Every admin surface of the
// VedicVision backend (users, plans, discounts, service forms, form
// submissions) gets a command family; protected commands revalidate the
// session before touching the backend.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/config"
	"github.com/vedicvision/vvadmin/internal/log"
)

var (
	cfg config.Config

	flagVerbose bool
	flagOutput  string
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "vvadmin",
	Short: "VedicVision admin console",
	Long: `vvadmin is the terminal admin console for the VedicVision backend.

It manages users, service plans, discounts, dynamic service forms and
form submissions. Commands that touch admin resources require an
authenticated admin session; run 'vvadmin login' first.

Examples:
  vvadmin login
  vvadmin users list --category online
  vvadmin plans list --output json
  vvadmin submissions status 42 completed`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logConfig := log.Config{
			Level:  log.ParseLevel(cfg.LogLevel),
			Format: log.ParseFormat(cfg.LogFormat),
			Output: os.Stderr,
		}
		if flagVerbose {
			logConfig.Level = log.LevelDebug
		}
		log.SetDefaultLogger(log.New(logConfig))
		return nil
	},
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: table or json (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation prompts")
}
