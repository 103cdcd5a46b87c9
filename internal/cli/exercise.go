package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/wire"
)

// ExerciseCmd returns the exercise command
func ExerciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Record exercises",
		Long:  "Record exercise entries attributed to a user",
	}

	cmd.AddCommand(exerciseAddCmd())

	return cmd
}

func exerciseAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [user-id]",
		Short: "Record an exercise for a user",
		Long: `Record an exercise for a user.

The date is optional; absent or unparsable dates resolve to today.

Examples:
  fitlog exercise add USER-ID --description "morning run" --duration 30
  fitlog exercise add USER-ID --duration 45 --date 2024-04-03`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			duration, _ := cmd.Flags().GetString("duration")
			date, _ := cmd.Flags().GetString("date")

			return wire.ExerciseAdapter().Record(cmd.Context(), args[0], description, duration, date)
		},
	}

	cmd.Flags().String("description", "", "What the exercise was")
	cmd.Flags().String("duration", "", "Duration in minutes")
	cmd.Flags().String("date", "", "Calendar date (yyyy-mm-dd), defaults to today")

	return cmd
}
