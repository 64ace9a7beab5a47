// Package sprite is the sprite assembly engine: icons are registered into sprites
// keyed by their logical output path, merged into one <svg><defs> document each,
// and given a content-derived final path.
package sprite
