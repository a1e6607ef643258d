// filepath: internal/cli/recovery.go
package cli

import (
	"fmt"

	"habithub/internal/logging"
	"habithub/internal/services"

	"github.com/spf13/cobra"
)

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Run maintenance tasks to fix database inconsistencies",
	Long: `Rewrites completion timestamps that were stored in a non-canonical format (e.g., by an import)
and applies the housekeeping max_age retention. Completions whose timestamp cannot be parsed are
reported, and deleted only when housekeeping.delete_unparseable is set.
This does not start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecovery()
	},
}

func init() {
	RootCmd.AddCommand(recoveryCmd)
}

func runRecovery() error {
	repo, err := openRepository(false)
	if err != nil {
		return fmt.Errorf("cannot run recovery on outdated database: %w", err)
	}
	defer repo.Close()

	logging.Log.Info("Starting recovery process...")

	report, err := services.NewHousekeepingService(repo, cfg).TriggerHousekeeping()
	if err != nil {
		return err
	}

	logging.Log.Infof("Recovery complete. %s", report.Message)
	return nil
}
