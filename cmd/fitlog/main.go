package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/cli"
	"github.com/example/fitlog/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fitlog",
		Short:   "fitlog - exercise tracking service",
		Version: version.String(),
		Long: `fitlog tracks exercise entries per user.
It serves a small HTTP API and offers the same operations on the command line.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.UserCmd())
	rootCmd.AddCommand(cli.ExerciseCmd())
	rootCmd.AddCommand(cli.LogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
