// Package svgdoc parses single SVG documents and re-emits them as <symbol> elements
// of an aggregate sprite document.
//
// Only the root <svg> element is interpreted: its attributes are addressable and its
// inner markup is carried verbatim (whitespace in character data is collapsed).
// Nothing below the root is validated or rewritten.
package svgdoc
