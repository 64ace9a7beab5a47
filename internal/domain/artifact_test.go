package domain

import "testing"

func TestArtifactReplaceText(t *testing.T) {
	a := TextArtifact("index.html", `<use href="/images/sprite.[hash].svg#icon-home"/> images/sprite.[hash].svg`)

	n := a.Replace("images/sprite.[hash].svg", "images/sprite.abc.svg")
	if n != 2 {
		t.Fatalf("expected 2 replacements, got %d", n)
	}
	if a.Source.Text != `<use href="/images/sprite.abc.svg#icon-home"/> images/sprite.abc.svg` {
		t.Fatalf("unexpected text %q", a.Source.Text)
	}
	if !a.Changed {
		t.Fatalf("expected artifact marked changed")
	}
}

func TestArtifactReplaceNamedSubstitutesBothFields(t *testing.T) {
	a := NamedArtifact("icons.json", "icons for images/s.[hash].svg", `{"u":"/images/s.[hash].svg#x"}`)

	n := a.Replace("images/s.[hash].svg", "images/s.1.svg")
	if n != 2 {
		t.Fatalf("expected 2 replacements, got %d", n)
	}
	if a.Source.Name != "icons for images/s.1.svg" {
		t.Fatalf("unexpected name %q", a.Source.Name)
	}
	if a.Source.Value != `{"u":"/images/s.1.svg#x"}` {
		t.Fatalf("unexpected value %q", a.Source.Value)
	}
}

func TestArtifactReplaceUnknownKindIsNoop(t *testing.T) {
	a := &Artifact{Path: "x", Source: ArtifactSource{Kind: SourceNone, Text: "sprite.svg"}}
	if n := a.Replace("sprite.svg", "other.svg"); n != 0 {
		t.Fatalf("expected 0 replacements, got %d", n)
	}
	if a.Changed || a.Source.Text != "sprite.svg" {
		t.Fatalf("expected artifact untouched")
	}
}

func TestArtifactReplaceNoMatch(t *testing.T) {
	a := TextArtifact("a.css", "body{}")
	if n := a.Replace("sprite.svg", "x.svg"); n != 0 {
		t.Fatalf("expected 0 replacements, got %d", n)
	}
	if a.Changed {
		t.Fatalf("expected unchanged artifact")
	}
}
