package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/cadet-tracker/internal/wire"
)

// AuditCmd returns the audit command
func AuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent audit log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			limit, _ := cmd.Flags().GetInt("limit")

			entries, err := wire.AuditService().RecentEntries(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to read audit log: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("Audit log is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tACTION\tENTITY\tFIELD")
			for _, e := range entries {
				field := e.FieldName
				if e.NewValue != "" {
					field = fmt.Sprintf("%s → %s", e.FieldName, e.NewValue)
				}
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\n", e.CreatedAt, e.Action, e.EntityType, e.EntityID, field)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int("limit", 50, "Maximum entries to show")
	return cmd
}
