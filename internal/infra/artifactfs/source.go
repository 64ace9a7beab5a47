package artifactfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

// Source loads build outputs matching include globs as text artifacts and
// writes changed ones back in place.
type Source struct {
	dir     string
	include []string
}

func NewSource(dir string, include []string) *Source {
	return &Source{dir: dir, include: include}
}

var _ ports.ArtifactSource = (*Source)(nil)

// LoadArtifacts returns the matching files sorted by path. A missing output
// directory yields no artifacts.
func (s *Source) LoadArtifacts() ([]*domain.Artifact, error) {
	if _, err := os.Stat(s.dir); errors.Is(err, fs.ErrNotExist) {
		return []*domain.Artifact{}, nil
	}

	fsys := os.DirFS(s.dir)
	seen := map[string]bool{}
	var paths []string
	for _, pattern := range s.include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &domain.OpError{
				Op:   "artifactfs.load",
				Kind: domain.KindInvalidConfig,
				Path: pattern,
				Err:  err,
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	out := make([]*domain.Artifact, 0, len(paths))
	for _, p := range paths {
		full := filepath.Join(s.dir, filepath.FromSlash(p))
		b, err := os.ReadFile(full)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "artifactfs.read",
				Kind: domain.KindExecution,
				Path: full,
				Err:  err,
			}
		}
		out = append(out, domain.TextArtifact(p, string(b)))
	}
	return out, nil
}

// SaveArtifacts writes each artifact's bytes to its path under the output directory.
func (s *Source) SaveArtifacts(artifacts []*domain.Artifact) error {
	for _, a := range artifacts {
		if a.Source.Kind != domain.SourceText && a.Source.Kind != domain.SourceNamed {
			continue
		}
		full := filepath.Join(s.dir, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return &domain.OpError{Op: "artifactfs.mkdir", Kind: domain.KindExecution, Path: full, Err: err}
		}

		tmp := full + ".tmp"
		if err := os.WriteFile(tmp, a.Bytes(), 0o644); err != nil {
			return &domain.OpError{Op: "artifactfs.write", Kind: domain.KindExecution, Path: tmp, Err: err}
		}
		if err := os.Rename(tmp, full); err != nil {
			_ = os.Remove(tmp)
			return &domain.OpError{Op: "artifactfs.rename", Kind: domain.KindExecution, Path: full, Err: err}
		}
	}
	return nil
}
