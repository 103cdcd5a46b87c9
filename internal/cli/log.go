package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/ports/primary"
	"github.com/example/fitlog/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [user-id]",
		Short: "Show a user's exercise log",
		Long: `Show a user's exercise log, optionally bounded by an inclusive
date range and capped to a result count.

Examples:
  fitlog log USER-ID
  fitlog log USER-ID --from 2024-04-01 --to 2024-04-30
  fitlog log USER-ID --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			limit, _ := cmd.Flags().GetString("limit")

			report, err := wire.LogService().QueryLog(cmd.Context(), primary.LogQueryRequest{
				UserID: args[0],
				From:   from,
				To:     to,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			displayLogReport(report)
			return nil
		},
	}

	cmd.Flags().String("from", "", "Inclusive lower date bound (yyyy-mm-dd)")
	cmd.Flags().String("to", "", "Inclusive upper date bound (yyyy-mm-dd)")
	cmd.Flags().String("limit", "", "Maximum number of entries to return")

	return cmd
}

func displayLogReport(report *primary.LogReport) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Println()
	fmt.Printf("%s %s (%s)\n", bold("Exercise log for"), green(report.Username), report.ID)
	fmt.Printf("%d entries\n\n", report.Count)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDURATION\tDESCRIPTION")
	for _, entry := range report.Log {
		fmt.Fprintf(w, "%s\t%d\t%s\n", entry.Date, entry.Duration, entry.Description)
	}
	w.Flush()
	fmt.Println()
}
