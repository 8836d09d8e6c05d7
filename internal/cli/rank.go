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

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Manage the rank catalog and awards",
	Long:  "List ranks, award a rank to a cadet, and manage rank requirements",
}

var rankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rank catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ranks, err := wire.RankService().ListRanks(ctx)
		if err != nil {
			return fmt.Errorf("failed to list ranks: %w", err)
		}

		if len(ranks) == 0 {
			fmt.Println("No ranks defined. Run `cadet init` to seed the default catalog.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tORDER\tRANK")
		for _, r := range ranks {
			fmt.Fprintf(w, "%d\t%d\t%s\n", r.ID, r.Order, r.Name)
		}
		return w.Flush()
	},
}

var rankAwardCmd = &cobra.Command{
	Use:   "award [cap-id] [rank-id]",
	Short: "Award a rank to a cadet",
	Long:  "Set a cadet's rank. Any prior award is replaced.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		rankID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid rank ID %q", args[1])
		}
		awardedOn, _ := cmd.Flags().GetString("date")

		err = wire.RankService().AwardRank(ctx, primary.AwardRankRequest{
			CAPID:     capID,
			RankID:    rankID,
			AwardedOn: awardedOn,
		})
		if err != nil {
			return fmt.Errorf("failed to award rank: %w", err)
		}

		fmt.Printf("✓ Rank awarded to cadet %d\n", capID)
		return nil
	},
}

var rankRequirementsCmd = &cobra.Command{
	Use:   "requirements [rank-id]",
	Short: "List the requirements linked to a rank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rankID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid rank ID %q", args[0])
		}

		requirements, err := wire.RequirementService().RequirementsForRank(ctx, rankID)
		if err != nil {
			return fmt.Errorf("failed to list requirements: %w", err)
		}

		if len(requirements) == 0 {
			fmt.Println("No requirements linked to this rank.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREQUIREMENT\tDESCRIPTION")
		for _, r := range requirements {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.Name, r.Description)
		}
		return w.Flush()
	},
}

func init() {
	rankAwardCmd.Flags().String("date", "", "Award date (YYYY-MM-DD, defaults to today)")

	rankCmd.AddCommand(rankListCmd)
	rankCmd.AddCommand(rankAwardCmd)
	rankCmd.AddCommand(rankRequirementsCmd)
}

// RankCmd returns the rank command
func RankCmd() *cobra.Command {
	return rankCmd
}
