package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgstore/internal/buildinfo"
	"github.com/aalvaropc/svgstore/internal/infra/fsworkspace"
	"github.com/aalvaropc/svgstore/internal/infra/logger"
	"github.com/aalvaropc/svgstore/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create svgstore.yaml and an icons directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			root, err := uc.Execute(path, force)
			if err != nil {
				return err
			}

			defer startLogging(root, debugEnabled(cmd))()
			logger.L().Info("cli.init.done", "root", root, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized svgstore workspace at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
