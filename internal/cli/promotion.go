package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/wire"
)

var promotionCmd = &cobra.Command{
	Use:   "promotion",
	Short: "Track promotion progress",
	Long:  "Show a cadet's next promotion target and mark requirements complete",
}

var promotionStatusCmd = &cobra.Command{
	Use:   "status [cap-id]",
	Short: "Show a cadet's promotion status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}

		status, err := wire.PromotionService().PromotionStatus(ctx, capID)
		if err != nil {
			return fmt.Errorf("failed to determine promotion status: %w", err)
		}

		if status.CurrentRank != nil {
			fmt.Printf("Current rank: %s\n", status.CurrentRank.Name)
		} else {
			fmt.Println("Current rank: (none)")
		}

		if status.NextRank == nil {
			fmt.Println("Next rank: (top of catalog)")
			return nil
		}
		fmt.Printf("Next rank: %s\n", status.NextRank.Name)

		if len(status.Requirements) == 0 {
			fmt.Println("No requirements linked to the next rank.")
			return nil
		}

		fmt.Println()
		done := 0
		for _, r := range status.Requirements {
			if r.Complete {
				done++
				mark := color.New(color.FgGreen).Sprint("✓")
				fmt.Printf("  %s %d: %s (completed %s)\n", mark, r.RequirementID, r.Name, r.CompletedOn)
			} else {
				mark := color.New(color.FgYellow).Sprint("·")
				fmt.Printf("  %s %d: %s\n", mark, r.RequirementID, r.Name)
			}
		}
		fmt.Println()
		fmt.Printf("%d of %d requirements complete\n", done, len(status.Requirements))
		return nil
	},
}

var promotionCompleteCmd = &cobra.Command{
	Use:   "complete [cap-id] [requirement-id]",
	Short: "Mark a requirement complete for a cadet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		return togglePromotion(args, true, date)
	},
}

var promotionUncompleteCmd = &cobra.Command{
	Use:   "uncomplete [cap-id] [requirement-id]",
	Short: "Unmark a requirement for a cadet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return togglePromotion(args, false, "")
	},
}

func togglePromotion(args []string, completed bool, date string) error {
	ctx := context.Background()
	capID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid CAP ID %q", args[0])
	}
	requirementID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid requirement ID %q", args[1])
	}

	err = wire.PromotionService().ToggleRequirement(ctx, primary.ToggleRequirementRequest{
		CAPID:         capID,
		RequirementID: requirementID,
		Completed:     completed,
		CompletedOn:   date,
	})
	if err != nil {
		return fmt.Errorf("failed to toggle requirement: %w", err)
	}

	if completed {
		fmt.Printf("✓ Requirement %d marked complete for cadet %d\n", requirementID, capID)
	} else {
		fmt.Printf("✓ Requirement %d unmarked for cadet %d\n", requirementID, capID)
	}
	return nil
}

func init() {
	promotionCompleteCmd.Flags().String("date", "", "Completion date (YYYY-MM-DD, defaults to today)")

	promotionCmd.AddCommand(promotionStatusCmd)
	promotionCmd.AddCommand(promotionCompleteCmd)
	promotionCmd.AddCommand(promotionUncompleteCmd)
}

// PromotionCmd returns the promotion command
func PromotionCmd() *cobra.Command {
	return promotionCmd
}
