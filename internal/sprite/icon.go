package sprite

import (
	"path/filepath"
	"strings"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// Icon is one source SVG registered into a Sprite. It is immutable once created.
type Icon struct {
	SourcePath string
	Name       string
	SymbolName string
	Content    string

	sprite *Sprite
}

// IconModule is the per-icon export consumed by code that references the icon.
type IconModule struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// NewIcon derives the names of the icon at sourcePath.
func NewIcon(s *Sprite, sourcePath, content string, naming domain.Naming) *Icon {
	name := Stem(sourcePath)
	return &Icon{
		SourcePath: sourcePath,
		Name:       name,
		SymbolName: SymbolName(name, naming),
		Content:    content,
		sprite:     s,
	}
}

// Stem returns the file name up to its first dot.
func Stem(sourcePath string) string {
	base := filepath.Base(sourcePath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}

// SymbolName builds the symbol id for an icon stem.
//
// The suffix is applied twice when non-empty: once joined to the stem and once
// appended after the prefix is added ("home" + "-v2" => "home-v2-v2"). Existing
// sprites and the markup referencing them depend on these ids.
func SymbolName(stem string, naming domain.Naming) string {
	symbol := stem + naming.Suffix
	if naming.Prefix != "" {
		symbol = naming.Prefix + symbol
	}
	if naming.Suffix != "" {
		symbol += naming.Suffix
	}
	return symbol
}

// Sprite returns the sprite the icon belongs to.
func (i *Icon) Sprite() *Sprite {
	return i.sprite
}

// URL returns the fragment URL selecting the icon's symbol in its sprite.
// The sprite path is read at call time: before generation it is the logical path.
func (i *Icon) URL(publicPath string) string {
	return strings.TrimRight(publicPath, "/") + "/" + i.sprite.FinalPath() + "#" + i.SymbolName
}

// Module returns the export record of the icon.
func (i *Icon) Module(publicPath string) IconModule {
	return IconModule{Name: i.Name, Symbol: i.URL(publicPath)}
}
