package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Partial config (only a sprite directory)
	content := []byte("svgstore:\n  sprites:\n    - directory: assets/icons\n")
	if err := os.WriteFile(filepath.Join(root, "svgstore.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Paths.OutputDir != "dist" {
		t.Fatalf("expected output dir=dist, got=%s", cfg.Paths.OutputDir)
	}
	if cfg.Paths.ReportsDir != ".svgstore/reports" {
		t.Fatalf("expected reports dir=.svgstore/reports, got=%s", cfg.Paths.ReportsDir)
	}
	if len(cfg.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got=%d", len(cfg.Sprites))
	}
	s := cfg.Sprites[0]
	if s.Directory != "assets/icons" || s.Name != "images/sprite.svg" || s.Prefix != "icon-" || !s.Emit {
		t.Fatalf("unexpected sprite defaults: %+v", s)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}
