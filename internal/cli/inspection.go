package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/wire"
)

var inspectionCmd = &cobra.Command{
	Use:   "inspection",
	Short: "Record and review uniform inspections",
	Long:  "Submit scored inspection checklists and review past results",
}

var inspectionChecklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Print the inspection checklist",
	Long:  "Print the checklist in scoring order. `inspection submit --scores` takes one score per line, in this order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		checklist := wire.InspectionService().Checklist(ctx)

		n := 1
		for _, sec := range checklist.Sections {
			fmt.Printf("%s:\n", sec.Name)
			for _, item := range sec.Items {
				fmt.Printf("  %2d. %s\n", n, item)
				n++
			}
		}
		fmt.Println()
		fmt.Printf("Each item scores 0-3 (%d points max).\n", (n-1)*3)
		return nil
	},
}

var inspectionSubmitCmd = &cobra.Command{
	Use:   "submit [cap-id]",
	Short: "Submit an inspection",
	Long: `Score a full checklist for a cadet and persist the result.

Scores are given with --scores as comma-separated integers, one per checklist
line in the order printed by 'cadet inspection checklist'. Per-item comments
use --comment "N:text" where N is the line number. Submitting again for the
same cadet and date replaces the earlier inspection.

Example:
  cadet inspection submit 123456 --scores 3,2,3,1,2,3,3,2,3,2,1,3,3,2,3,3,2,1,3,2 \
    --comment "4:loose threads" --overall "good effort"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		scoresArg, _ := cmd.Flags().GetString("scores")
		comments, _ := cmd.Flags().GetStringArray("comment")
		overall, _ := cmd.Flags().GetString("overall")
		date, _ := cmd.Flags().GetString("date")
		inspector, _ := cmd.Flags().GetInt("inspector")
		if inspector == 0 {
			inspector = wire.Config().DefaultInspector
		}

		items, err := parseChecklistScores(ctx, scoresArg, comments)
		if err != nil {
			return err
		}

		insp, err := wire.InspectionService().SubmitInspection(ctx, primary.SubmitInspectionRequest{
			CAPID:          capID,
			InspectorCAPID: inspector,
			Date:           date,
			Items:          items,
			OverallComment: overall,
		})
		if err != nil {
			return fmt.Errorf("failed to submit inspection: %w", err)
		}

		fmt.Printf("✓ Inspection recorded for cadet %d on %s\n", capID, insp.Date)
		fmt.Printf("  Score: %d  Rating: %s\n", insp.Total, ratingColor(insp.Rating))
		if insp.Comments != "" {
			fmt.Printf("  Comments: %s\n", insp.Comments)
		}
		return nil
	},
}

var inspectionShowCmd = &cobra.Command{
	Use:   "show [cap-id]",
	Short: "Show a cadet's inspection for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		date, _ := cmd.Flags().GetString("date")

		insp, err := wire.InspectionService().FindInspection(ctx, capID, date)
		if err != nil {
			return fmt.Errorf("failed to look up inspection: %w", err)
		}
		if insp == nil {
			fmt.Println("No inspection found for that date.")
			return nil
		}

		fmt.Printf("Date: %s\n", insp.Date)
		if insp.InspectorCAPID != 0 {
			fmt.Printf("Inspector: %d\n", insp.InspectorCAPID)
		}
		fmt.Printf("Score: %d\n", insp.Total)
		fmt.Printf("Rating: %s\n", ratingColor(insp.Rating))
		if insp.Comments != "" {
			fmt.Printf("Comments: %s\n", insp.Comments)
		}

		if len(insp.Items) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SECTION\tITEM\tSCORE\tCOMMENT")
			for _, it := range insp.Items {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", it.Section, it.Name, it.Score, it.Comment)
			}
			return w.Flush()
		}
		return nil
	},
}

var inspectionListCmd = &cobra.Command{
	Use:   "list [cap-id]",
	Short: "List a cadet's inspections, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}

		inspections, err := wire.InspectionService().ListInspections(ctx, capID)
		if err != nil {
			return fmt.Errorf("failed to list inspections: %w", err)
		}

		if len(inspections) == 0 {
			fmt.Println("No inspections found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSCORE\tRATING")
		for _, insp := range inspections {
			fmt.Fprintf(w, "%s\t%d\t%s\n", insp.Date, insp.Total, insp.Rating)
		}
		return w.Flush()
	},
}

// parseChecklistScores expands a comma-separated score list into checklist
// items by walking the catalog in order. comments entries are "N:text".
func parseChecklistScores(ctx context.Context, scoresArg string, comments []string) ([]primary.ChecklistItem, error) {
	if scoresArg == "" {
		return nil, fmt.Errorf("--scores is required (run `cadet inspection checklist` for the line order)")
	}

	parts := strings.Split(scoresArg, ",")
	scores := make([]int, 0, len(parts))
	for _, p := range parts {
		score, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid score %q in --scores", p)
		}
		scores = append(scores, score)
	}

	commentByLine := make(map[int]string)
	for _, c := range comments {
		lineStr, text, ok := strings.Cut(c, ":")
		if !ok {
			return nil, fmt.Errorf("invalid --comment %q (want \"N:text\")", c)
		}
		line, err := strconv.Atoi(strings.TrimSpace(lineStr))
		if err != nil {
			return nil, fmt.Errorf("invalid --comment line number %q", lineStr)
		}
		commentByLine[line] = strings.TrimSpace(text)
	}

	checklist := wire.InspectionService().Checklist(ctx)
	var items []primary.ChecklistItem
	n := 0
	for _, sec := range checklist.Sections {
		for _, name := range sec.Items {
			n++
			if n > len(scores) {
				continue
			}
			items = append(items, primary.ChecklistItem{
				Section: sec.Name,
				Name:    name,
				Score:   scores[n-1],
				Comment: commentByLine[n],
			})
		}
	}
	if len(scores) != n {
		return nil, fmt.Errorf("got %d scores, checklist has %d lines", len(scores), n)
	}
	return items, nil
}

// ratingColor renders a rating with its conventional color.
func ratingColor(rating string) string {
	switch rating {
	case "Excellent":
		return color.New(color.FgGreen).Sprint(rating)
	case "Meets Standard":
		return color.New(color.FgCyan).Sprint(rating)
	case "Needs Improvement":
		return color.New(color.FgYellow).Sprint(rating)
	case "Unacceptable":
		return color.New(color.FgRed).Sprint(rating)
	default:
		return rating
	}
}

func init() {
	inspectionSubmitCmd.Flags().String("scores", "", "Comma-separated scores in checklist order")
	inspectionSubmitCmd.Flags().StringArray("comment", nil, "Per-item comment as \"N:text\" (repeatable)")
	inspectionSubmitCmd.Flags().String("overall", "", "Overall comment")
	inspectionSubmitCmd.Flags().String("date", "", "Inspection date (YYYY-MM-DD, defaults to today)")
	inspectionSubmitCmd.Flags().Int("inspector", 0, "Inspector CAP ID (defaults to config)")

	inspectionShowCmd.Flags().String("date", "", "Inspection date (YYYY-MM-DD, defaults to today)")

	inspectionCmd.AddCommand(inspectionChecklistCmd)
	inspectionCmd.AddCommand(inspectionSubmitCmd)
	inspectionCmd.AddCommand(inspectionShowCmd)
	inspectionCmd.AddCommand(inspectionListCmd)
}

// InspectionCmd returns the inspection command
func InspectionCmd() *cobra.Command {
	return inspectionCmd
}
