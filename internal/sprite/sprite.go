package sprite

import (
	"sync"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/svgdoc"
)

// Sprite accumulates icons destined for one output document.
type Sprite struct {
	mu sync.RWMutex

	logicalPath string
	finalPath   string
	name        string
	content     string
	generated   bool

	icons map[string]*Icon
	order []*Icon
}

// New creates an empty sprite for logicalPath. Use Store.GetOrCreate in builds.
func New(logicalPath string) *Sprite {
	return &Sprite{
		logicalPath: logicalPath,
		finalPath:   logicalPath,
		name:        spriteName(logicalPath),
		icons:       map[string]*Icon{},
	}
}

// LogicalPath returns the configured, possibly templated, output path.
func (s *Sprite) LogicalPath() string {
	return s.logicalPath
}

// Name returns the sprite's base name with [tokens] stripped.
func (s *Sprite) Name() string {
	return s.name
}

// FinalPath returns the output path: the logical path until Generate resolves it.
func (s *Sprite) FinalPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalPath
}

// Content returns the last generated document, empty before Generate.
func (s *Sprite) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Generated reports whether Generate has succeeded at least once.
func (s *Sprite) Generated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generated
}

// AddIcon registers the icon at sourcePath. Registering a known path returns the
// existing icon and ignores content and naming.
func (s *Sprite) AddIcon(sourcePath, content string, naming domain.Naming) *Icon {
	s.mu.Lock()
	defer s.mu.Unlock()

	if icon, ok := s.icons[sourcePath]; ok {
		return icon
	}

	icon := NewIcon(s, sourcePath, content, naming)
	s.icons[sourcePath] = icon
	s.order = append(s.order, icon)
	return icon
}

// Icon returns the icon registered at sourcePath.
func (s *Sprite) Icon(sourcePath string) (*Icon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	icon, ok := s.icons[sourcePath]
	return icon, ok
}

// Icons returns the registered icons in insertion order.
func (s *Sprite) Icons() []*Icon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Icon, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered icons.
func (s *Sprite) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Generate merges every icon into one document and resolves the final path from
// its content. A single unparsable icon fails the whole sprite and leaves the
// previous content and final path in place.
func (s *Sprite) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbols := make([]string, 0, len(s.order))
	for _, icon := range s.order {
		doc, err := svgdoc.Parse(icon.Content)
		if err != nil {
			return "", &domain.OpError{
				Op:   "sprite.generate",
				Kind: domain.KindMalformedMarkup,
				Path: icon.SourcePath,
				Err:  err,
			}
		}
		symbols = append(symbols, doc.Symbol(icon.SymbolName))
	}

	content := svgdoc.Compose(svgdoc.Defs(symbols...))

	s.content = content
	s.finalPath = InterpolateName(s.logicalPath, []byte(content))
	s.generated = true

	return content, nil
}

// NeedsRewrite reports whether references to the logical path must be rewritten,
// i.e. the final path differs from it.
func (s *Sprite) NeedsRewrite() bool {
	return s.FinalPath() != s.logicalPath
}

// Rewrite replaces the logical path with the final path in the artifact source
// and returns the number of replacements.
func (s *Sprite) Rewrite(a *domain.Artifact) int {
	final := s.FinalPath()
	if final == s.logicalPath {
		return 0
	}
	return a.Replace(s.logicalPath, final)
}
