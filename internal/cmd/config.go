package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/config"
	"github.com/vedicvision/vvadmin/internal/ux"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit vvadmin configuration",
	Long: `Manage the vvadmin configuration stored at ~/.vvadmin/config.yaml

Keys:
  api_url     backend origin (VVADMIN_API_URL overrides it)
  log_level   debug, info, warn, error
  log_format  text, json
  output      default list output: table, json

Examples:
  vvadmin config view
  vvadmin config get api_url
  vvadmin config set api_url https://api.vedicvision.example/api
  vvadmin config path
  vvadmin config edit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := ux.NewFormatter("json", nil)
		if err != nil {
			return err
		}
		return formatter.Format(map[string]string{
			"api_url":    cfg.APIURL,
			"log_level":  cfg.LogLevel,
			"log_format": cfg.LogFormat,
			"output":     cfg.Output,
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		editorBin := os.Getenv("EDITOR")
		if editorBin == "" {
			return fmt.Errorf("$EDITOR is not set")
		}

		path, err := config.Path()
		if err != nil {
			return err
		}
		// Write defaults first so the editor opens a populated file
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := cfg.Save(); err != nil {
				return err
			}
		}

		edit := exec.Command(editorBin, path)
		edit.Stdin = os.Stdin
		edit.Stdout = os.Stdout
		edit.Stderr = os.Stderr
		return edit.Run()
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}
