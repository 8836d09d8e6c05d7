package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/config"
	"github.com/example/cadet-tracker/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the cadet database",
		Long:  `Create the database at ~/.cadet/cadet.db, apply the schema, and seed the default rank and position catalogs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			unitName, _ := cmd.Flags().GetString("unit")

			configDir, err := config.DefaultConfigDir()
			if err != nil {
				return fmt.Errorf("failed to resolve config directory: %w", err)
			}

			cfg, err := config.LoadConfig(configDir)
			if err != nil {
				cfg = &config.Config{Version: "1"}
			}
			if unitName != "" {
				cfg.UnitName = unitName
			}
			if err := config.SaveConfig(configDir, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config written to ~/.cadet/config.json")

			if cfg.DatabasePath != "" {
				db.SetDBPath(cfg.DatabasePath)
			}
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing cadet database at %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("✓ Database initialized")

			if err := db.SeedReferenceData(database); err != nil {
				return fmt.Errorf("failed to seed reference data: %w", err)
			}
			fmt.Println("✓ Rank and position catalogs seeded")

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  cadet cadet add 123456 --first Jane --last Doe")
			fmt.Println("  cadet rank list")

			return nil
		},
	}

	cmd.Flags().String("unit", "", "Unit name for the config")
	return cmd
}
