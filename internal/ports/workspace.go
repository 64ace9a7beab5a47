package ports

import "github.com/aalvaropc/svgstore/internal/domain"

// WorkspaceLocator resolves the workspace root that owns startDir.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// WorkspaceInitializer scaffolds a new workspace. Existing files are kept
// unless force is set.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
