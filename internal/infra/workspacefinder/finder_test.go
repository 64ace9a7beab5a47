package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Create svgstore.yaml at root
	if err := os.WriteFile(filepath.Join(root, "svgstore.yaml"), []byte("svgstore:\n  sprites:\n    - directory: icons\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_AcceptsFilePath(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "svgstore.yaml"), []byte("svgstore: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	icon := filepath.Join(tmp, "home.svg")
	if err := os.WriteFile(icon, []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}

	got, err := NewFinder().FindRoot(icon)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != tmp {
		t.Fatalf("expected root=%s, got=%s", tmp, got)
	}
}

func TestFindRoot_CustomMarker(t *testing.T) {
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "sprites.yaml"), []byte("svgstore: {}\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	got, err := NewFinder(WithMarkers("sprites.yaml")).FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != tmp {
		t.Fatalf("expected root=%s, got=%s", tmp, got)
	}
}

func TestFindRoot_IgnoresMarkerDirectory(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "svgstore.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := NewFinder().FindRoot(tmp)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
