package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join("testdata", "svgstore.yaml")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Paths.OutputDir != "public" {
		t.Fatalf("expected output dir public, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.ReportsDir != domain.DefaultReportsDir {
		t.Fatalf("expected default reports dir, got %q", cfg.Paths.ReportsDir)
	}
	if cfg.PublicPath != "/assets/" || cfg.Manifest != "icons.json" {
		t.Fatalf("unexpected public path/manifest: %q %q", cfg.PublicPath, cfg.Manifest)
	}
	if len(cfg.Rewrite.Include) != 1 || cfg.Rewrite.Include[0] != "**/*.html" {
		t.Fatalf("unexpected rewrite include %v", cfg.Rewrite.Include)
	}
	if len(cfg.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(cfg.Sprites))
	}

	icons := cfg.Sprites[0]
	if icons.Pattern != domain.DefaultIconPattern || icons.Prefix != domain.DefaultSymbolPrefix || !icons.Emit {
		t.Fatalf("expected defaults on first sprite, got %+v", icons)
	}
	if !icons.Optimizer.Enabled("remove_comments") {
		t.Fatalf("expected plugin toggle to map")
	}

	brands := cfg.Sprites[1]
	if brands.Prefix != "" || brands.Suffix != "-b" || brands.Emit {
		t.Fatalf("expected explicit overrides on second sprite, got %+v", brands)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join("testdata", "svgstore_invalid.yaml")
	_, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "sprites[0].pattern") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("svgstore: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFile(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	root := t.TempDir()
	content := []byte("svgstore:\n  sprites:\n    - directory: icons\n")
	if err := os.WriteFile(filepath.Join(root, FileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("SVGSTORE_OUTPUT_DIR", "build")
	t.Setenv("SVGSTORE_PUBLIC_PATH", "https://cdn.example.com/")
	t.Setenv("SVGSTORE_NO_EMIT", "true")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Paths.OutputDir != "build" {
		t.Fatalf("expected env output dir, got %q", cfg.Paths.OutputDir)
	}
	if cfg.PublicPath != "https://cdn.example.com/" {
		t.Fatalf("expected env public path, got %q", cfg.PublicPath)
	}
	if cfg.Sprites[0].Emit {
		t.Fatalf("expected emit disabled by env")
	}
}

func TestParseEnvInvalidBool(t *testing.T) {
	t.Setenv("SVGSTORE_NO_EMIT", "maybe")
	if _, err := ParseEnv(); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
