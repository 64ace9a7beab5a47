package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/infra/assettable"
	"github.com/aalvaropc/svgstore/internal/infra/config"
	"github.com/aalvaropc/svgstore/internal/infra/logger"
	"github.com/aalvaropc/svgstore/internal/usecase"
)

func buildCmd() *cobra.Command {
	var workspace string
	var noEmit bool
	var noSave bool
	var strict bool
	var concurrency int
	var format string

	c := &cobra.Command{
		Use:   "build",
		Short: "Build sprites, rewrite references in build outputs and write the sprite files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer startLogging(ws.root, debugEnabled(cmd))()

			cfg := ws.cfg
			if noEmit {
				cfg = config.DisableEmit(cfg)
			}

			uc := usecase.NewBuildSprites(ws.finder, ws.optimizer,
				usecase.WithLogger(logger.L()),
				usecase.WithPublicPath(cfg.PublicPath),
				usecase.WithManifest(cfg.Manifest),
				usecase.WithConcurrency(concurrency),
			)

			table := assettable.New()
			rep, err := uc.Execute(cmd.Context(), cfg, ws.artifacts, table)
			rep.Root = ws.root
			if err != nil {
				_ = printReport(cmd.OutOrStdout(), rep, "", format)
				return err
			}

			written, err := table.Flush(ws.outputDir())
			if err != nil {
				return err
			}
			logger.L().Info("cli.build.flushed", "dir", ws.outputDir(), "files", len(written))

			var id string
			if !noSave {
				id, err = ws.reports.SaveReport(rep)
				if err != nil {
					return err
				}
			}

			if err := printReport(cmd.OutOrStdout(), rep, id, format); err != nil {
				return err
			}

			if strict && len(rep.Failures) > 0 {
				return fmt.Errorf("build failed (%d icon failure(s))", len(rep.Failures))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noEmit, "no-emit", false, "Generate and rewrite, but write no sprite files")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the build report under .svgstore/reports/")
	c.Flags().BoolVar(&strict, "strict", false, "Fail when any icon could not be ingested")
	c.Flags().IntVar(&concurrency, "concurrency", 0, "Icons optimized in parallel (default 8)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printReport(w io.Writer, rep domain.BuildReport, reportID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": reportID,
			"report":    rep,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, rep, reportID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, rep domain.BuildReport, reportID string) {
	total := rep.FinishedAt.Sub(rep.StartedAt)
	if rep.StartedAt.IsZero() || rep.FinishedAt.IsZero() {
		total = 0
	}

	if rep.Root != "" {
		fmt.Fprintf(w, "Workspace: %s\n", rep.Root)
	}
	fmt.Fprintf(w, "Phase:     %s\n", rep.Phase)
	fmt.Fprintf(w, "Duration:  %s\n", total.Round(time.Millisecond))
	if reportID != "" {
		fmt.Fprintf(w, "Report ID: %s\n", reportID)
	}
	fmt.Fprintln(w)

	for _, s := range rep.Sprites {
		status := "OK"
		switch {
		case s.Error != "":
			status = "FAIL"
		case !s.Emitted:
			status = "SKIP"
		}

		fmt.Fprintf(w, "- [%s] %s -> %s (%d symbols, %d bytes)\n", status, s.LogicalPath, s.FinalPath, len(s.Icons), s.Size)
		if s.Error != "" {
			fmt.Fprintf(w, "  error: %s\n", s.Error)
		}
	}

	if len(rep.Rewrites) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rewritten: %d file(s), %d reference(s)\n", len(rep.Rewrites), countReplacements(rep.Rewrites))
	}

	if len(rep.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Warnings: %d icon(s) skipped\n", len(rep.Failures))
		for _, f := range rep.Failures {
			fmt.Fprintf(w, "  ✗ %s [%s] %s\n", f.Source, f.Kind, f.Message)
		}
	}
}

func countReplacements(in []domain.RewriteReport) int {
	n := 0
	for _, r := range in {
		n += r.Replacements
	}
	return n
}
