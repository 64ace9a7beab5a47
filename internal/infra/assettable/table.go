package assettable

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

// Table is an in-memory asset table flushed to an output directory after a build.
type Table struct {
	mu     sync.RWMutex
	assets map[string]ports.Asset
}

func New() *Table {
	return &Table{assets: map[string]ports.Asset{}}
}

var _ ports.AssetTable = (*Table)(nil)

func (t *Table) Asset(path string) (ports.Asset, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.assets[path]
	return a, ok
}

func (t *Table) SetAsset(path string, asset ports.Asset) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.assets[path] = asset
}

// Paths returns the asset paths, sorted.
func (t *Table) Paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.assets))
	for p := range t.assets {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Flush writes every asset below dir and returns the written file paths.
func (t *Table) Flush(dir string) ([]string, error) {
	var written []string
	for _, p := range t.Paths() {
		asset, _ := t.Asset(p)

		dst, err := outputPath(dir, p)
		if err != nil {
			return written, err
		}
		if err := writeAtomic(dst, asset.Source()); err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	return written, nil
}

// outputPath joins an asset path onto dir, refusing paths that leave it.
func outputPath(dir, p string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", &domain.OpError{
			Op:   "assettable.flush",
			Kind: domain.KindInvalidConfig,
			Path: p,
			Err:  domain.ErrInvalidConfig,
		}
	}
	return filepath.Join(dir, clean), nil
}

func writeAtomic(dst string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &domain.OpError{Op: "assettable.mkdir", Kind: domain.KindExecution, Path: filepath.Dir(dst), Err: err}
	}

	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{Op: "assettable.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "assettable.rename", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}
