package iconfinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

// Finder globs icon files relative to a workspace root.
// Returned paths keep the configured directory form with forward slashes,
// so reports and manifests do not depend on where the workspace lives.
type Finder struct {
	root string
}

func NewFinder(root string) *Finder {
	return &Finder{root: root}
}

var _ ports.IconFinder = (*Finder)(nil)

func (f *Finder) FindIcons(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &domain.OpError{
			Op:   "iconfinder.find",
			Kind: domain.KindInvalidConfig,
			Path: dir,
			Err:  fmt.Errorf("invalid pattern %q: %w", pattern, domain.ErrInvalidConfig),
		}
	}

	abs := f.resolve(dir)
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("icon directory %q: %w", dir, domain.ErrNotFound)
		}
		return nil, &domain.OpError{
			Op:   "iconfinder.find",
			Kind: domain.KindNotFound,
			Path: abs,
			Err:  err,
		}
	}

	matches, err := doublestar.Glob(os.DirFS(abs), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, &domain.OpError{
			Op:   "iconfinder.find",
			Kind: domain.KindExecution,
			Path: abs,
			Err:  err,
		}
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, path.Join(filepath.ToSlash(dir), m))
	}
	sort.Strings(out)
	return out, nil
}

func (f *Finder) ReadIcon(p string) ([]byte, error) {
	abs := f.resolve(p)
	b, err := os.ReadFile(abs)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "iconfinder.read",
			Kind: kind,
			Path: abs,
			Err:  err,
		}
	}
	return b, nil
}

func (f *Finder) resolve(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) || f.root == "" {
		return p
	}
	return filepath.Join(f.root, p)
}
