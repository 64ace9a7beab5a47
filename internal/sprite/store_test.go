package sprite

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore()

	a := st.GetOrCreate("images/sprite.svg")
	b := st.GetOrCreate("images/sprite.svg")
	c := st.GetOrCreate("images/other.svg")

	if a != b {
		t.Fatalf("expected same sprite for same logical path")
	}
	if a == c {
		t.Fatalf("expected distinct sprites for distinct paths")
	}
	if st.Len() != 2 {
		t.Fatalf("expected 2 sprites, got %d", st.Len())
	}

	got := st.Sprites()
	if got[0] != a || got[1] != c {
		t.Fatalf("expected creation order")
	}
	if s, ok := st.Lookup("images/other.svg"); !ok || s != c {
		t.Fatalf("expected lookup hit")
	}
	if _, ok := st.Lookup("missing.svg"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestStoreGetOrCreateConcurrent(t *testing.T) {
	st := NewStore()

	var wg sync.WaitGroup
	results := make([]*Sprite, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := st.GetOrCreate("images/sprite.svg")
			s.AddIcon("/icons/home.svg", "<svg/>", domain.Naming{})
			results[i] = s
		}(i)
	}
	wg.Wait()

	if st.Len() != 1 {
		t.Fatalf("expected a single sprite, got %d", st.Len())
	}
	for _, s := range results {
		if s != results[0] {
			t.Fatalf("expected every caller to observe the same sprite")
		}
	}
	if results[0].Len() != 1 {
		t.Fatalf("expected a single icon, got %d", results[0].Len())
	}
}

func TestStoreTemplated(t *testing.T) {
	st := NewStore()
	literal := st.GetOrCreate("a.svg")
	templated := st.GetOrCreate("b.[hash].svg")

	for _, s := range st.Sprites() {
		if _, err := s.Generate(); err != nil {
			t.Fatalf("Generate error: %v", err)
		}
	}

	got := st.Templated()
	if len(got) != 1 || got[0] != templated {
		t.Fatalf("expected only templated sprite, got %v", got)
	}
	if literal.NeedsRewrite() {
		t.Fatalf("literal sprite must not need rewrite")
	}
}

func TestStoreTemplated_LongestLogicalPathFirst(t *testing.T) {
	st := NewStore()
	short := st.GetOrCreate("sprite.[hash].svg")
	long := st.GetOrCreate("icons/sprite.[hash].svg")
	other := st.GetOrCreate("x.[hash].svg")

	for i, s := range st.Sprites() {
		s.AddIcon(fmt.Sprintf("/i/%d.svg", i), fmt.Sprintf(`<svg viewBox="0 0 %d %d"/>`, i+1, i+1), domain.Naming{})
		if _, err := s.Generate(); err != nil {
			t.Fatalf("Generate error: %v", err)
		}
	}

	got := st.Templated()
	if len(got) != 3 || got[0] != long || got[1] != short || got[2] != other {
		t.Fatalf("expected longest logical path first, got %v", got)
	}
}
