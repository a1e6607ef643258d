// filepath: internal/cli/streak.go
package cli

import (
	"encoding/json"
	"io"

	"habithub/internal/services"

	"github.com/spf13/cobra"
)

var streakHabitID int64

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Print the longest streak overall, or of one habit",
	Long:  `Computes streaks from the stored completions and prints the result as JSON. This does not start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(false)
		if err != nil {
			return err
		}
		defer repo.Close()

		return printStreak(cmd.OutOrStdout(), services.NewAnalyticsService(repo), streakHabitID)
	},
}

func init() {
	streakCmd.Flags().Int64Var(&streakHabitID, "habit", 0, "Habit ID; omit for the best streak across all habits.")
	RootCmd.AddCommand(streakCmd)
}

func printStreak(w io.Writer, analytics services.AnalyticsService, habitID int64) error {
	var result interface{}
	var err error
	if habitID > 0 {
		result, err = analytics.LongestStreakForHabit(habitID)
	} else {
		result, err = analytics.LongestStreakOverall()
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
