// filepath: internal/cli/seed.go
package cli

import (
	"time"

	"habithub/internal/initconfig"
	"habithub/internal/logging"
	"habithub/internal/services"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the predefined habits with backdated completions",
	Long: `Creates the predefined habits (or the habits of --init_config) that do not exist yet
and backfills them with completions for the last seed.days days. This does not start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(true)
		if err != nil {
			return err
		}
		defer repo.Close()

		return seedHabits(services.NewHabitService(repo))
	},
}

func init() {
	seedCmd.Flags().StringVar(&initConfig, "init_config", "", "Path to a TOML file with habits to seed instead of the predefined ones. (Env: HABITHUB_INIT_CONFIG)")
	RootCmd.AddCommand(seedCmd)
}

// seedHabits seeds from the init file if one was given, otherwise the predefined set.
func seedHabits(habitSvc services.HabitService) error {
	habits := initconfig.PredefinedHabits
	if initConfig != "" {
		logging.Log.Infof("Found init_config, seeding habits from: %s", initConfig)
		loaded, err := initconfig.Load(initConfig)
		if err != nil {
			return err
		}
		habits = loaded
	}

	created, err := initconfig.Run(habitSvc, habits, cfg.Seed.Days, time.Now())
	if err != nil {
		return err
	}
	logging.Log.Infof("Seeding complete. Habits created: %d", created)
	return nil
}
