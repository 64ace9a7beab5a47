package assettable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

func textAsset(s string) ports.Asset {
	return ports.Asset{
		Source: func() []byte { return []byte(s) },
		Size:   func() int { return len(s) },
	}
}

func TestTable_SetAndGet(t *testing.T) {
	tbl := New()
	if _, ok := tbl.Asset("a.svg"); ok {
		t.Fatalf("expected empty table")
	}

	tbl.SetAsset("b.svg", textAsset("b"))
	tbl.SetAsset("a.svg", textAsset("aa"))

	a, ok := tbl.Asset("a.svg")
	if !ok || a.Size() != 2 {
		t.Fatalf("expected asset a.svg of size 2")
	}
	if got := tbl.Paths(); len(got) != 2 || got[0] != "a.svg" {
		t.Fatalf("expected sorted paths, got %v", got)
	}
}

func TestTable_Flush(t *testing.T) {
	out := t.TempDir()
	tbl := New()
	tbl.SetAsset("images/sprite.abc.svg", textAsset("<svg/>"))

	written, err := tbl.Flush(out)
	if err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	want := filepath.Join(out, "images", "sprite.abc.svg")
	if len(written) != 1 || written[0] != want {
		t.Fatalf("expected %s written, got %v", want, written)
	}

	b, err := os.ReadFile(want)
	if err != nil || string(b) != "<svg/>" {
		t.Fatalf("unexpected file content %q, %v", b, err)
	}
}

func TestTable_FlushRejectsEscapingPath(t *testing.T) {
	tbl := New()
	tbl.SetAsset("../evil.svg", textAsset("x"))

	if _, err := tbl.Flush(t.TempDir()); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
