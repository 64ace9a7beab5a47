package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func configCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect the workspace configuration",
	}

	c.AddCommand(configShowCmd())
	return c
}

func configShowCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (svgstore.yaml plus SVGSTORE_* overrides)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace: %s\n", ws.root)
			printConfig(cmd.OutOrStdout(), ws.cfg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printConfig(w io.Writer, cfg domain.Config) {
	manifest := cfg.Manifest
	if manifest == "" {
		manifest = "(disabled)"
	}

	fmt.Fprintf(w, "Output:    %s\n", cfg.Paths.OutputDir)
	fmt.Fprintf(w, "Reports:   %s\n", cfg.Paths.ReportsDir)
	fmt.Fprintf(w, "Public:    %q\n", cfg.PublicPath)
	fmt.Fprintf(w, "Manifest:  %s\n", manifest)
	fmt.Fprintf(w, "Rewrite:   %s\n", strings.Join(cfg.Rewrite.Include, ", "))
	fmt.Fprintln(w)

	for _, s := range cfg.Sprites {
		emit := "emit"
		if !s.Emit {
			emit = "no-emit"
		}
		fmt.Fprintf(w, "- %s  (%s/%s, prefix=%q, suffix=%q, %s)\n", s.Name, s.Directory, s.Pattern, s.Prefix, s.Suffix, emit)
		if len(s.Optimizer.Command) > 0 {
			fmt.Fprintf(w, "  optimizer: %s\n", strings.Join(s.Optimizer.Command, " "))
		}
	}
}
