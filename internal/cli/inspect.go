package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/usecase/query"
)

func inspectCmd() *cobra.Command {
	var workspace string
	var reportID string
	var exprs []string
	var format string

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Show a saved build report or query it with JSONPath",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			var rep domain.BuildReport
			if strings.TrimSpace(reportID) == "" {
				rep, err = ws.reports.LatestReport()
			} else {
				rep, err = ws.reports.LoadReport(reportID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(exprs) == 0 {
				return printReport(out, rep, rep.ID, format)
			}

			results, err := query.Report(rep, exprs)
			if err != nil {
				return err
			}
			printQueryResults(out, results)

			if n := countQueryFailures(results); n > 0 {
				return fmt.Errorf("%d query(ies) did not match", n)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&reportID, "report", "", "Report ID (default: latest)")
	c.Flags().StringArrayVarP(&exprs, "query", "q", nil, "JSONPath expression, e.g. $.sprites[0].final_path (repeatable)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format when no query is given: pretty|json")
	return c
}

func printQueryResults(w io.Writer, results []domain.QueryResult) {
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "✓ %s = %s\n", r.Expr, r.Value)
			continue
		}
		fmt.Fprintf(w, "✗ %s: %s\n", r.Expr, r.Message)
	}
}

func countQueryFailures(in []domain.QueryResult) int {
	n := 0
	for _, r := range in {
		if !r.Success {
			n++
		}
	}
	return n
}
