// Package cli implements the cadet-tracker command tree.
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

var cadetCmd = &cobra.Command{
	Use:   "cadet",
	Short: "Manage cadet records",
	Long:  "Add, list, show, and update cadets in the unit roster",
}

var cadetAddCmd = &cobra.Command{
	Use:   "add [cap-id]",
	Short: "Add a new cadet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		firstName, _ := cmd.Flags().GetString("first")
		lastName, _ := cmd.Flags().GetString("last")
		dob, _ := cmd.Flags().GetString("dob")
		joinDate, _ := cmd.Flags().GetString("joined")

		cadet, err := wire.CadetService().AddCadet(ctx, primary.AddCadetRequest{
			CAPID:       capID,
			FirstName:   firstName,
			LastName:    lastName,
			DateOfBirth: dob,
			JoinDate:    joinDate,
		})
		if err != nil {
			return fmt.Errorf("failed to add cadet: %w", err)
		}

		fmt.Printf("✓ Added cadet %s, %s (CAP ID %d)\n", cadet.LastName, cadet.FirstName, cadet.CAPID)
		return nil
	},
}

var cadetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cadets",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cadets, err := wire.CadetService().ListCadets(ctx)
		if err != nil {
			return fmt.Errorf("failed to list cadets: %w", err)
		}

		if len(cadets) == 0 {
			fmt.Println("No cadets found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CAP ID\tNAME\tJOINED")
		for _, c := range cadets {
			fmt.Fprintf(w, "%d\t%s, %s\t%s\n", c.CAPID, c.LastName, c.FirstName, c.JoinDate)
		}
		return w.Flush()
	},
}

var cadetShowCmd = &cobra.Command{
	Use:   "show [cap-id]",
	Short: "Show cadet details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}

		cadet, err := wire.CadetService().GetCadetByCAPID(ctx, capID)
		if err != nil {
			return fmt.Errorf("cadet not found: %w", err)
		}

		fmt.Printf("CAP ID: %d\n", cadet.CAPID)
		fmt.Printf("Name: %s, %s\n", cadet.LastName, cadet.FirstName)
		if cadet.DateOfBirth != "" {
			fmt.Printf("Date of birth: %s\n", cadet.DateOfBirth)
		}
		if cadet.JoinDate != "" {
			fmt.Printf("Joined: %s\n", cadet.JoinDate)
		}

		ranks, err := wire.RankService().CadetRanks(ctx, capID)
		if err == nil && len(ranks) > 0 {
			current := ranks[0]
			for _, r := range ranks {
				if r.Order > current.Order {
					current = r
				}
			}
			fmt.Printf("Rank: %s\n", current.Name)
		}

		positions, err := wire.PositionService().CadetPositions(ctx, capID)
		if err == nil {
			for _, p := range positions {
				if p.EndDate == "" {
					fmt.Printf("Position: %s (since %s)\n", p.PositionName, p.StartDate)
				}
			}
		}
		return nil
	},
}

var cadetUpdateCmd = &cobra.Command{
	Use:   "update [cap-id]",
	Short: "Update a cadet's personal fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		capID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid CAP ID %q", args[0])
		}
		firstName, _ := cmd.Flags().GetString("first")
		lastName, _ := cmd.Flags().GetString("last")
		dob, _ := cmd.Flags().GetString("dob")
		joinDate, _ := cmd.Flags().GetString("joined")

		err = wire.CadetService().UpdateCadet(ctx, primary.UpdateCadetRequest{
			CAPID:       capID,
			FirstName:   firstName,
			LastName:    lastName,
			DateOfBirth: dob,
			JoinDate:    joinDate,
		})
		if err != nil {
			return fmt.Errorf("failed to update cadet: %w", err)
		}

		fmt.Printf("✓ Updated cadet %d\n", capID)
		return nil
	},
}

func init() {
	cadetAddCmd.Flags().String("first", "", "First name")
	cadetAddCmd.Flags().String("last", "", "Last name")
	cadetAddCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	cadetAddCmd.Flags().String("joined", "", "Join date (YYYY-MM-DD)")

	cadetUpdateCmd.Flags().String("first", "", "First name")
	cadetUpdateCmd.Flags().String("last", "", "Last name")
	cadetUpdateCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	cadetUpdateCmd.Flags().String("joined", "", "Join date (YYYY-MM-DD)")

	cadetCmd.AddCommand(cadetAddCmd)
	cadetCmd.AddCommand(cadetListCmd)
	cadetCmd.AddCommand(cadetShowCmd)
	cadetCmd.AddCommand(cadetUpdateCmd)
}

// CadetCmd returns the cadet command
func CadetCmd() *cobra.Command {
	return cadetCmd
}
