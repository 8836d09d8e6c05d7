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

var requirementCmd = &cobra.Command{
	Use:   "requirement",
	Short: "Manage promotion requirements",
	Long:  "Create requirements and link them to the ranks they gate",
}

var requirementCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new requirement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		description, _ := cmd.Flags().GetString("description")

		req, err := wire.RequirementService().CreateRequirement(ctx, primary.CreateRequirementRequest{
			Name:        args[0],
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create requirement: %w", err)
		}

		fmt.Printf("✓ Created requirement %d: %s\n", req.ID, req.Name)
		return nil
	},
}

var requirementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		requirements, err := wire.RequirementService().ListRequirements(ctx)
		if err != nil {
			return fmt.Errorf("failed to list requirements: %w", err)
		}

		if len(requirements) == 0 {
			fmt.Println("No requirements found.")
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

var requirementUpdateCmd = &cobra.Command{
	Use:   "update [requirement-id]",
	Short: "Update a requirement's name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		requirementID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid requirement ID %q", args[0])
		}
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		err = wire.RequirementService().UpdateRequirement(ctx, primary.UpdateRequirementRequest{
			RequirementID: requirementID,
			Name:          name,
			Description:   description,
		})
		if err != nil {
			return fmt.Errorf("failed to update requirement: %w", err)
		}

		fmt.Printf("✓ Updated requirement %d\n", requirementID)
		return nil
	},
}

var requirementLinkCmd = &cobra.Command{
	Use:   "link [rank-id] [requirement-id]",
	Short: "Link a requirement to a rank",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return linkOrUnlink(args, true)
	},
}

var requirementUnlinkCmd = &cobra.Command{
	Use:   "unlink [rank-id] [requirement-id]",
	Short: "Remove a requirement from a rank",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return linkOrUnlink(args, false)
	},
}

func linkOrUnlink(args []string, link bool) error {
	ctx := context.Background()
	rankID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid rank ID %q", args[0])
	}
	requirementID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid requirement ID %q", args[1])
	}

	if link {
		if err := wire.RequirementService().LinkRequirement(ctx, rankID, requirementID); err != nil {
			return fmt.Errorf("failed to link requirement: %w", err)
		}
		fmt.Printf("✓ Linked requirement %d to rank %d\n", requirementID, rankID)
		return nil
	}

	if err := wire.RequirementService().UnlinkRequirement(ctx, rankID, requirementID); err != nil {
		return fmt.Errorf("failed to unlink requirement: %w", err)
	}
	fmt.Printf("✓ Unlinked requirement %d from rank %d\n", requirementID, rankID)
	return nil
}

func init() {
	requirementCreateCmd.Flags().StringP("description", "d", "", "Requirement description")

	requirementUpdateCmd.Flags().String("name", "", "New name")
	requirementUpdateCmd.Flags().StringP("description", "d", "", "New description")

	requirementCmd.AddCommand(requirementCreateCmd)
	requirementCmd.AddCommand(requirementListCmd)
	requirementCmd.AddCommand(requirementUpdateCmd)
	requirementCmd.AddCommand(requirementLinkCmd)
	requirementCmd.AddCommand(requirementUnlinkCmd)
}

// RequirementCmd returns the requirement command
func RequirementCmd() *cobra.Command {
	return requirementCmd
}
