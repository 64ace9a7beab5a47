package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgstore/internal/infra/logger"
	"github.com/aalvaropc/svgstore/internal/ui/tui"
)

func browseCmd() *cobra.Command {
	var workspace string
	var reportID string

	c := &cobra.Command{
		Use:   "browse",
		Short: "Browse a build report in the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, workspace, reportID)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&reportID, "report", "", "Report ID (default: latest)")
	return c
}

func runBrowse(cmd *cobra.Command, workspace, reportID string) error {
	ws, err := loadWorkspace(workspace)
	if err != nil {
		return err
	}

	debug := debugEnabled(cmd)
	defer startLogging(ws.root, debug)()

	return tui.Run(tui.Deps{
		Reports:  ws.reports,
		ReportID: reportID,
		Root:     ws.root,
		Logger:   logger.L(),
		Debug:    debug,
	})
}
