package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgstore/internal/infra/logger"
	"github.com/aalvaropc/svgstore/internal/usecase"
)

// validateCmd ingests and generates every sprite without touching the output
// directory, so broken icons and bad names surface before a real build.
func validateCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that every icon parses and every sprite generates (no files written)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer startLogging(ws.root, debugEnabled(cmd))()

			uc := usecase.NewBuildSprites(ws.finder, ws.optimizer,
				usecase.WithLogger(logger.L()),
				usecase.WithPublicPath(ws.cfg.PublicPath),
			)

			rep, err := uc.Execute(cmd.Context(), ws.cfg, nil, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rep.Failures) > 0 {
				for _, f := range rep.Failures {
					fmt.Fprintf(out, "✗ %s [%s] %s\n", f.Source, f.Kind, f.Message)
				}
				return fmt.Errorf("validation failed (%d icon failure(s))", len(rep.Failures))
			}

			symbols := 0
			for _, s := range rep.Sprites {
				symbols += len(s.Icons)
			}
			fmt.Fprintf(out, "OK (%d sprite(s), %d symbol(s))\n", len(rep.Sprites), symbols)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
