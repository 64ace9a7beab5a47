package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reports",
		Short: "Manage saved build reports",
	}

	c.AddCommand(reportsListCmd())
	return c
}

func reportsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved build reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.reports.ListReports()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no reports found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				started := "-"
				if !r.StartedAt.IsZero() {
					started = r.StartedAt.UTC().Format(time.RFC3339)
				}
				fmt.Fprintf(out, "- %s  (%s, %d sprite(s), %d failure(s))\n", r.ID, started, r.Sprites, r.Failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
