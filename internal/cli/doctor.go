package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/config"
	"github.com/example/fitlog/internal/db"
	"github.com/example/fitlog/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the fitlog environment",
		Long: `Environment health check for fitlog.

Validates:
- Config file (readable, valid JSON)
- Database file (present, openable)
- Schema (required tables exist)

Examples:
  fitlog doctor              # Run full health check
  fitlog doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}
			hasErrors := false

			cfgResult, cfg := checkConfig()
			results = append(results, cfgResult)
			results = append(results, checkDatabase(cfg))

			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'fitlog init' to set up the database.")
				} else {
					fmt.Printf("All checks passed. %s\n", version.String())
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig validates the config file and returns the loaded config
func checkConfig() (CheckResult, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		return CheckResult{
			Name:    "Config",
			Status:  "✗",
			Details: "  " + err.Error(),
		}, config.Default()
	}
	return CheckResult{Name: "Config", Status: "✓"}, cfg
}

// checkDatabase validates the database file and its schema
func checkDatabase(cfg *config.Config) CheckResult {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return CheckResult{Name: "Database", Status: "✗", Details: "  Cannot resolve database path"}
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Database",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s not found\n  Run: fitlog init", path),
		}
	}

	database, err := db.Open(path)
	if err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: "  " + err.Error(),
		}
	}
	defer database.Close()

	missing := []string{}
	for _, table := range []string{"users", "exercises"} {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			missing = append(missing, table)
		}
	}

	if len(missing) > 0 {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: "  Missing tables: " + strings.Join(missing, ", ") + "\n  Run: fitlog init",
		}
	}

	return CheckResult{Name: "Database", Status: "✓"}
}
