package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

// InitWorkspace scaffolds svgstore.yaml, an icons directory and the
// .svgstore state directories under a root.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

type InitOption func(*InitWorkspace)

func WithInitLogger(l *slog.Logger) InitOption {
	return func(uc *InitWorkspace) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...InitOption) *InitWorkspace {
	uc := &InitWorkspace{
		initializer: initializer,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute initializes root. With force, existing scaffold files are overwritten.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: empty workspace root", domain.ErrInvalidConfig),
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{Op: "workspace.init", Kind: domain.KindInvalidConfig, Path: root, Err: err}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		uc.log.Error("workspace.init.failed", "root", abs, "force", force, "err", err)
		return "", err
	}

	uc.log.Info("workspace.init.done", "root", abs, "force", force)
	return abs, nil
}
