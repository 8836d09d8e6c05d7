package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/wire"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Manage duty positions",
	Long:  "Maintain the duty position catalog and cadet assignments",
}

var positionCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Add a position to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		line, _ := cmd.Flags().GetBool("line")
		level, _ := cmd.Flags().GetInt("level")

		pos, err := wire.PositionService().CreatePosition(ctx, primary.CreatePositionRequest{
			Name:  args[0],
			Line:  line,
			Level: level,
		})
		if err != nil {
			return fmt.Errorf("failed to create position: %w", err)
		}

		fmt.Printf("✓ Created position %d: %s\n", pos.ID, pos.Name)
		return nil
	},
}

var positionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the position catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		positions, err := wire.PositionService().ListPositions(ctx)
		if err != nil {
			return fmt.Errorf("failed to list positions: %w", err)
		}

		if len(positions) == 0 {
			fmt.Println("No positions found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPOSITION\tTYPE\tLEVEL")
		for _, p := range positions {
			kind := "support"
			if p.Line {
				kind = "line"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, kind, p.Level)
		}
		return w.Flush()
	},
}

var positionAssignCmd = &cobra.Command{
	Use:   "assign [cap-id] [position-id]",
	Short: "Assign a position to a cadet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		positionID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid position ID %q", args[1])
		}
		startDate, _ := cmd.Flags().GetString("start")

		err = wire.PositionService().AssignPosition(ctx, primary.AssignPositionRequest{
			CAPID:      capID,
			PositionID: positionID,
			StartDate:  startDate,
		})
		if err != nil {
			return fmt.Errorf("failed to assign position: %w", err)
		}

		fmt.Printf("✓ Position assigned to cadet %d\n", capID)
		return nil
	},
}

var positionHistoryCmd = &cobra.Command{
	Use:   "history [cap-id]",
	Short: "Show a cadet's position history, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}

		assignments, err := wire.PositionService().CadetPositions(ctx, capID)
		if err != nil {
			return fmt.Errorf("failed to list assignments: %w", err)
		}

		if len(assignments) == 0 {
			fmt.Println("No position assignments found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPOSITION\tFROM\tTO")
		for _, a := range assignments {
			end := a.EndDate
			if end == "" {
				end = "(current)"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.PositionName, a.StartDate, end)
		}
		return w.Flush()
	},
}

var positionEndCmd = &cobra.Command{
	Use:   "end [assignment-id]",
	Short: "Close an open position assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		assignmentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid assignment ID %q", args[0])
		}
		endDate, _ := cmd.Flags().GetString("date")

		if err := wire.PositionService().EndAssignment(ctx, assignmentID, endDate); err != nil {
			return fmt.Errorf("failed to end assignment: %w", err)
		}

		fmt.Printf("✓ Assignment %d closed\n", assignmentID)
		return nil
	},
}

func init() {
	positionCreateCmd.Flags().Bool("line", false, "Line position (default support)")
	positionCreateCmd.Flags().Int("level", 0, "Seniority level")

	positionAssignCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, defaults to today)")

	positionEndCmd.Flags().String("date", "", "End date (YYYY-MM-DD, defaults to today)")

	positionCmd.AddCommand(positionCreateCmd)
	positionCmd.AddCommand(positionListCmd)
	positionCmd.AddCommand(positionAssignCmd)
	positionCmd.AddCommand(positionHistoryCmd)
	positionCmd.AddCommand(positionEndCmd)
}

// PositionCmd returns the position command
func PositionCmd() *cobra.Command {
	return positionCmd
}
