package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string

	cmd := &cobra.Command{
		Use:          "svgstore",
		Short:        "svgstore: combine SVG icons into sprite sheets",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, workspace, "")
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .svgstore/logs/svgstore.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		initCmd(),
		buildCmd(),
		validateCmd(),
		inspectCmd(),
		browseCmd(),
		reportsCmd(),
		configCmd(),
		versionCmd(),
	)
	return cmd
}

func debugEnabled(cmd *cobra.Command) bool {
	v, err := cmd.Root().PersistentFlags().GetBool("debug")
	return err == nil && v
}
