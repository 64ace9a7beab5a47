package fsworkspace

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

const gitignoreHeader = "# svgstore"

// Initializer scaffolds a workspace: svgstore.yaml, an icons directory with a
// sample icon and the .svgstore state directories.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, rel := range []string{
		domain.DefaultIconDirectory,
		".svgstore/logs",
		domain.DefaultReportsDir,
	} {
		d := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initError(d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return initError(root, err)
	}
	if err := fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		return copyTemplate(sub, p, filepath.Join(root, filepath.FromSlash(p)), force)
	}); err != nil {
		return initError(root, err)
	}
	return nil
}

// copyTemplate writes src to dst unless dst exists and force is off.
func copyTemplate(fsys fs.FS, src, dst string, force bool) error {
	if _, err := os.Stat(dst); err == nil && !force {
		return nil
	}

	b, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

func initError(p string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: p,
		Err:  err,
	}
}

func gitignoreEntries() []string {
	return []string{
		path.Dir(domain.DefaultReportsDir) + "/",
		domain.DefaultOutputDir + "/",
	}
}

func ensureGitignore(root string) error {
	p := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	merged, changed := mergeGitignore(string(b), gitignoreEntries())
	if !changed {
		return nil
	}
	return os.WriteFile(p, []byte(merged), 0o644)
}

// mergeGitignore appends the entries missing from existing under the svgstore
// header. Lines already present are never repeated.
func mergeGitignore(existing string, entries []string) (string, bool) {
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			present[t] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return existing, false
	}

	var b strings.Builder
	if existing != "" {
		b.WriteString(existing)
		if !strings.HasSuffix(existing, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		b.WriteString(gitignoreHeader + "\n")
	}
	b.WriteString(strings.Join(missing, "\n") + "\n")
	return b.String(), true
}
