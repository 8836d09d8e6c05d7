package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/wire"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "File and review incident reports",
	Long:  "File Good/Bad reports on cadets and track their resolution",
}

var reportFileCmd = &cobra.Command{
	Use:   "file [cap-id] [description]",
	Short: "File a report on a cadet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		reportType, _ := cmd.Flags().GetString("type")
		createdBy, _ := cmd.Flags().GetString("by")
		incidentDate, _ := cmd.Flags().GetString("date")

		report, err := wire.ReportService().FileReport(ctx, primary.FileReportRequest{
			CAPID:        capID,
			Type:         reportType,
			Description:  args[1],
			CreatedBy:    createdBy,
			IncidentDate: incidentDate,
		})
		if err != nil {
			return fmt.Errorf("failed to file report: %w", err)
		}

		fmt.Printf("✓ Filed %s report %d on cadet %d\n", report.Type, report.ID, capID)
		return nil
	},
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, _ := cmd.Flags().GetInt("cadet")
		unresolved, _ := cmd.Flags().GetBool("unresolved")

		reports, err := wire.ReportService().ListReports(ctx, primary.ReportFilters{
			CAPID:      capID,
			Unresolved: unresolved,
		})
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}

		if len(reports) == 0 {
			fmt.Println("No reports found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tDATE\tSTATUS\tDESCRIPTION")
		for _, r := range reports {
			status := "open"
			if r.Resolved {
				status = "resolved"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, typeColor(r.Type), r.IncidentDate, status, r.Description)
		}
		return w.Flush()
	},
}

var reportShowCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Show report details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		reportID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid report ID %q", args[0])
		}

		report, err := wire.ReportService().GetReport(ctx, reportID)
		if err != nil {
			return fmt.Errorf("report not found: %w", err)
		}

		fmt.Printf("Report: %d\n", report.ID)
		fmt.Printf("Type: %s\n", typeColor(report.Type))
		fmt.Printf("Incident date: %s\n", report.IncidentDate)
		fmt.Printf("Description: %s\n", report.Description)
		if report.CreatedBy != "" {
			fmt.Printf("Filed by: %s\n", report.CreatedBy)
		}
		if report.Resolved {
			fmt.Printf("Resolved by: %s\n", report.ResolvedBy)
		} else {
			fmt.Println("Status: open")
		}
		return nil
	},
}

var reportResolveCmd = &cobra.Command{
	Use:   "resolve [report-id]",
	Short: "Mark a report resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		reportID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid report ID %q", args[0])
		}
		resolvedBy, _ := cmd.Flags().GetString("by")

		if err := wire.ReportService().ResolveReport(ctx, reportID, resolvedBy); err != nil {
			return fmt.Errorf("failed to resolve report: %w", err)
		}

		fmt.Printf("✓ Report %d resolved\n", reportID)
		return nil
	},
}

func typeColor(reportType string) string {
	switch reportType {
	case "Good":
		return color.New(color.FgGreen).Sprint(reportType)
	case "Bad":
		return color.New(color.FgRed).Sprint(reportType)
	default:
		return reportType
	}
}

func init() {
	reportFileCmd.Flags().String("type", "Good", "Report type (Good or Bad)")
	reportFileCmd.Flags().String("by", "", "Who is filing the report")
	reportFileCmd.Flags().String("date", "", "Incident date (YYYY-MM-DD, defaults to today)")

	reportListCmd.Flags().Int("cadet", 0, "Filter by cadet CAP ID")
	reportListCmd.Flags().Bool("unresolved", false, "Only unresolved reports")

	reportResolveCmd.Flags().String("by", "", "Who resolved the report")

	reportCmd.AddCommand(reportFileCmd)
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportResolveCmd)
}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	return reportCmd
}
