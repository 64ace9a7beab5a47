package sprite

import (
	"sort"
	"sync"
)

// Store is the registry of sprites for one build, keyed by logical path.
type Store struct {
	mu      sync.Mutex
	sprites map[string]*Sprite
	order   []*Sprite
}

func NewStore() *Store {
	return &Store{sprites: map[string]*Sprite{}}
}

// GetOrCreate returns the sprite for logicalPath, creating it on first use.
func (st *Store) GetOrCreate(logicalPath string) *Sprite {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sprites[logicalPath]; ok {
		return s
	}
	s := New(logicalPath)
	st.sprites[logicalPath] = s
	st.order = append(st.order, s)
	return s
}

// Lookup returns the sprite registered for logicalPath.
func (st *Store) Lookup(logicalPath string) (*Sprite, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sprites[logicalPath]
	return s, ok
}

// Sprites returns every sprite in creation order.
func (st *Store) Sprites() []*Sprite {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]*Sprite, len(st.order))
	copy(out, st.order)
	return out
}

// Templated returns the sprites whose final path differs from their logical
// path, longest logical path first so that a path ending with another
// ("icons/sprite.svg", "sprite.svg") is replaced before the shorter one.
// Ties keep creation order.
func (st *Store) Templated() []*Sprite {
	var out []*Sprite
	for _, s := range st.Sprites() {
		if s.NeedsRewrite() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].LogicalPath()) > len(out[j].LogicalPath())
	})
	return out
}

// Len returns the number of sprites.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.order)
}
