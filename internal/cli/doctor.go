package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/config"
	"github.com/example/cadet-tracker/internal/db"
	"github.com/example/cadet-tracker/internal/version"
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
		Short: "Validate the cadet-tracker environment",
		Long: `Health check for the cadet tracker.

Validates:
- Config file (~/.cadet/config.json)
- Database file and schema capabilities
- Checklist catalog override, when configured`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfig(),
				checkDatabase(),
				checkCatalog(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Printf("cadet %s\n\n", version.String())
				for _, r := range results {
					fmt.Printf("%-22s %s\n", r.Name, r.Status)
					if r.Status != "✓" && r.Details != "" {
						fmt.Printf("    %s\n", r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Exit code only (0=healthy, 1=issues)")
	return cmd
}

func checkConfig() CheckResult {
	dir, err := config.DefaultConfigDir()
	if err != nil {
		return CheckResult{Name: "config", Status: "✗", Details: err.Error()}
	}
	if _, err := config.LoadConfig(dir); err != nil {
		return CheckResult{Name: "config", Status: "⚠", Details: "no config found; run `cadet init`"}
	}
	return CheckResult{Name: "config", Status: "✓"}
}

func checkDatabase() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}
	if _, err := os.Stat(dbPath); err != nil {
		return CheckResult{Name: "database", Status: "⚠", Details: fmt.Sprintf("%s missing; run `cadet init`", dbPath)}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}
	caps, err := db.ResolveCapabilities(database)
	if err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}
	if !caps.ItemBreakdown {
		return CheckResult{Name: "database", Status: "⚠", Details: "legacy schema: per-item inspection scores are not stored"}
	}
	return CheckResult{Name: "database", Status: "✓"}
}

func checkCatalog() CheckResult {
	dir, err := config.DefaultConfigDir()
	if err != nil {
		return CheckResult{Name: "checklist catalog", Status: "✗", Details: err.Error()}
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		cfg = &config.Config{}
	}
	catalog, err := config.ResolveChecklistCatalog(cfg)
	if err != nil {
		return CheckResult{Name: "checklist catalog", Status: "✗", Details: err.Error()}
	}
	return CheckResult{
		Name:   "checklist catalog",
		Status: "✓",
		Details: fmt.Sprintf("%d items, %d max points", catalog.ItemCount(), catalog.MaxTotal()),
	}
}
