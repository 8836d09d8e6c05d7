package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/cli"
	"github.com/example/cadet-tracker/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "cadet",
		Short:   "Cadet tracker for CAP squadron records",
		Version: version.String(),
		Long: `cadet tracks a Civil Air Patrol squadron's cadets: uniform inspections,
rank awards, promotion requirements, duty positions, and incident reports.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.CadetCmd())
	rootCmd.AddCommand(cli.RankCmd())
	rootCmd.AddCommand(cli.RequirementCmd())
	rootCmd.AddCommand(cli.PromotionCmd())
	rootCmd.AddCommand(cli.InspectionCmd())
	rootCmd.AddCommand(cli.PositionCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.AuditCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
