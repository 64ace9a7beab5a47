package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/infra/artifactfs"
	"github.com/aalvaropc/svgstore/internal/infra/iconfinder"
	"github.com/aalvaropc/svgstore/internal/infra/logger"
	"github.com/aalvaropc/svgstore/internal/infra/optimizer"
	"github.com/aalvaropc/svgstore/internal/infra/reportstore"
	"github.com/aalvaropc/svgstore/internal/infra/workspacefinder"
	"github.com/aalvaropc/svgstore/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	finder    ports.IconFinder
	optimizer ports.Optimizer

	artifacts ports.ArtifactSource
	reports   ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		finder:    iconfinder.NewFinder(root),
		optimizer: optimizer.NewCommand(optimizer.NewBasic(), optimizer.WithDir(root)),
		artifacts: artifactfs.NewSource(filepath.Join(root, cfg.Paths.OutputDir), cfg.Rewrite.Include),
		reports:   reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true)),
	}, nil
}

func (ws *workspaceCtx) outputDir() string {
	return filepath.Join(ws.root, ws.cfg.Paths.OutputDir)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `svgstore init`): %w", wd, err)
	}
	return root, nil
}

// startLogging points the process logger at root. Logging problems never
// fail a command; the returned func is always safe to call.
func startLogging(root string, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
