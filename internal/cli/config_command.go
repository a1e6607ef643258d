// filepath: internal/cli/config_command.go
package cli

import (
	"fmt"

	"habithub/internal/config"
	"habithub/internal/logging"

	"github.com/spf13/cobra"
)

var configOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration to a TOML file",
	Long: `Resolves defaults, the config file, environment variables and flags, then writes the
result to --out. Useful to bootstrap a config file for a new installation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfig(configOut)
	},
}

func init() {
	configCmd.Flags().StringVar(&configOut, "out", "habithub.toml", "Destination of the generated config file")
	RootCmd.AddCommand(configCmd)
}

func writeConfig(path string) error {
	if err := config.SaveConfig(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	logging.Log.Infof("Configuration written to %s", path)
	return nil
}
