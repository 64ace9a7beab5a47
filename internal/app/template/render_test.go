package template

import (
	"reflect"
	"strings"
	"testing"
)

func upper(token string) (string, bool) {
	switch token {
	case "name", "hash":
		return strings.ToUpper(token), true
	}
	return "", false
}

func TestRenderNameSingleToken(t *testing.T) {
	out := RenderName("sprite.[hash].svg", upper)
	if out != "sprite.HASH.svg" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderNameMultipleTokens(t *testing.T) {
	out := RenderName("img/[name]-[hash].svg", upper)
	if out != "img/NAME-HASH.svg" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderNameKeepsUnknownTokens(t *testing.T) {
	out := RenderName("[emoji].[hash].svg", upper)
	if out != "[emoji].HASH.svg" {
		t.Fatalf("expected unknown token kept, got %q", out)
	}
}

func TestRenderNameUnclosedBracket(t *testing.T) {
	out := RenderName("sprite.[hash.svg", upper)
	if out != "sprite.[hash.svg" {
		t.Fatalf("expected input unchanged, got %q", out)
	}
}

func TestRenderNameNestedOpenBracket(t *testing.T) {
	out := RenderName("a[b[hash]c", upper)
	if out != "a[bHASHc" {
		t.Fatalf("expected innermost token resolved, got %q", out)
	}
}

func TestRenderNameNoTokens(t *testing.T) {
	if out := RenderName("images/sprite.svg", upper); out != "images/sprite.svg" {
		t.Fatalf("expected unchanged, got %q", out)
	}
	if out := RenderName("", upper); out != "" {
		t.Fatalf("expected empty, got %q", out)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("img/[name].[sha256:hash:hex:8].svg")
	want := []string{"name", "sha256:hash:hex:8"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
