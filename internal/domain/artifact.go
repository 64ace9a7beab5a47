package domain

import "strings"

// SourceKind tags the shape of an artifact's source.
type SourceKind string

const (
	SourceNone  SourceKind = "none"
	SourceText  SourceKind = "text"
	SourceNamed SourceKind = "named"
)

// ArtifactSource is the mutable source of a build artifact.
// Only the fields matching Kind are meaningful.
type ArtifactSource struct {
	Kind SourceKind

	// Text is the full source of a SourceText artifact.
	Text string

	// Name and Value are substituted independently for SourceNamed artifacts.
	Name  string
	Value string
}

// Artifact is one output of the surrounding build that may reference sprite paths.
type Artifact struct {
	Path   string
	Source ArtifactSource

	// Changed is set once a rewrite altered the source.
	Changed bool
}

// TextArtifact builds a plain-text artifact.
func TextArtifact(path, text string) *Artifact {
	return &Artifact{Path: path, Source: ArtifactSource{Kind: SourceText, Text: text}}
}

// NamedArtifact builds a composite name/value artifact.
func NamedArtifact(path, name, value string) *Artifact {
	return &Artifact{Path: path, Source: ArtifactSource{Kind: SourceNamed, Name: name, Value: value}}
}

// Replace substitutes every occurrence of old with repl in the artifact source
// and returns the number of replacements. Unknown kinds are left untouched.
func (a *Artifact) Replace(old, repl string) int {
	if a == nil || old == "" || old == repl {
		return 0
	}

	n := 0
	switch a.Source.Kind {
	case SourceText:
		n = strings.Count(a.Source.Text, old)
		if n > 0 {
			a.Source.Text = strings.ReplaceAll(a.Source.Text, old, repl)
		}
	case SourceNamed:
		nn := strings.Count(a.Source.Name, old)
		nv := strings.Count(a.Source.Value, old)
		if nn > 0 {
			a.Source.Name = strings.ReplaceAll(a.Source.Name, old, repl)
		}
		if nv > 0 {
			a.Source.Value = strings.ReplaceAll(a.Source.Value, old, repl)
		}
		n = nn + nv
	default:
		return 0
	}

	if n > 0 {
		a.Changed = true
	}
	return n
}

// Bytes returns the content to persist for the artifact.
func (a *Artifact) Bytes() []byte {
	switch a.Source.Kind {
	case SourceText:
		return []byte(a.Source.Text)
	case SourceNamed:
		return []byte(a.Source.Value)
	default:
		return nil
	}
}
