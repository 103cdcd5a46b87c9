package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/config"
	"github.com/example/fitlog/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the fitlog database",
		Long:  `Initialize the fitlog database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			path := cfg.DBPath
			if path == "" {
				path, err = db.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to resolve database path: %w", err)
				}
			}

			fmt.Printf("Initializing fitlog database at %s\n", path)

			database, err := db.Open(path)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  fitlog user add \"your-username\"")
			fmt.Println("  fitlog serve")

			return nil
		},
	}
}
