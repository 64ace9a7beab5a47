package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/infra/config"
	"github.com/aalvaropc/svgstore/internal/ports"
)

// Finder walks up from a directory until one of its markers is a regular file.
type Finder struct {
	markers []string
}

type Option func(*Finder)

// WithMarkers replaces the file names that identify a workspace root.
func WithMarkers(names ...string) Option {
	return func(f *Finder) {
		if len(names) > 0 {
			f.markers = names
		}
	}
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{markers: []string{config.FileName}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot accepts a directory or a file inside the workspace.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", findError(domain.KindInvalidConfig, "", errors.New("start directory is empty"))
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", findError(domain.KindExecution, startDir, err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for dir = filepath.Clean(dir); ; dir = filepath.Dir(dir) {
		if f.isRoot(dir) {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", findError(domain.KindNotFound, startDir, domain.ErrNotFound)
		}
	}
}

func (f *Finder) isRoot(dir string) bool {
	for _, m := range f.markers {
		info, err := os.Stat(filepath.Join(dir, m))
		if err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}

func findError(kind domain.ErrorKind, path string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: kind,
		Path: path,
		Err:  err,
	}
}
