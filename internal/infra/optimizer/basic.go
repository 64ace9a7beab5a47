package optimizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
	"github.com/aalvaropc/svgstore/internal/svgdoc"
)

// Plugin names understood by Basic. Unknown names are ignored.
const (
	PluginRemoveXMLProlog    = "remove_xml_prolog"
	PluginRemoveDoctype      = "remove_doctype"
	PluginRemoveComments     = "remove_comments"
	PluginRemoveMetadata     = "remove_metadata"
	PluginRemoveEditorsNS    = "remove_editors_ns"
	PluginCollapseWhitespace = "collapse_whitespace"
)

var (
	reProlog    = regexp.MustCompile(`<\?xml[^>]*\?>`)
	reDoctype   = regexp.MustCompile(`(?s)<!DOCTYPE[^>\[]*(\[.*?\])?\s*>`)
	reComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	reMetadata  = regexp.MustCompile(`(?s)<(metadata|title|desc)\b[^>]*?(/>|>.*?</(metadata|title|desc)\s*>)`)
	reEditorEl  = regexp.MustCompile(`(?s)<(sodipodi|inkscape):[\w-]+\b[^>]*?(/>|>.*?</(sodipodi|inkscape):[\w-]+\s*>)`)
	reEditorAt  = regexp.MustCompile(`\s+(xmlns:)?(sodipodi|inkscape)(:[\w-]+)?\s*=\s*("[^"]*"|'[^']*')`)
	reInterTags = regexp.MustCompile(`>\s+<`)
)

// Basic applies toggle-driven textual cleanups to icon markup and rejects
// results that do not parse as an SVG document.
type Basic struct{}

func NewBasic() *Basic {
	return &Basic{}
}

var _ ports.Optimizer = (*Basic)(nil)

func (b *Basic) Optimize(ctx context.Context, raw []byte, opts domain.OptimizerOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "", &domain.OpError{
			Op:   "optimizer.basic",
			Kind: domain.KindNormalization,
			Err:  fmt.Errorf("empty icon: %w", domain.ErrNormalization),
		}
	}

	if opts.Enabled(PluginRemoveXMLProlog) {
		s = reProlog.ReplaceAllString(s, "")
	}
	if opts.Enabled(PluginRemoveDoctype) {
		s = stripDoctype(s)
	}
	if opts.Enabled(PluginRemoveComments) {
		s = reComment.ReplaceAllString(s, "")
	}
	if opts.Enabled(PluginRemoveMetadata) {
		s = reMetadata.ReplaceAllString(s, "")
	}
	if opts.Enabled(PluginRemoveEditorsNS) {
		s = reEditorEl.ReplaceAllString(s, "")
		s = reEditorAt.ReplaceAllString(s, "")
	}
	if opts.Enabled(PluginCollapseWhitespace) {
		s = reInterTags.ReplaceAllString(s, "><")
	}

	s = strings.TrimSpace(s)
	if _, err := svgdoc.Parse(s); err != nil {
		return "", &domain.OpError{
			Op:   "optimizer.basic",
			Kind: domain.KindNormalization,
			Err:  fmt.Errorf("%w: %w", domain.ErrNormalization, err),
		}
	}
	return s, nil
}

// stripDoctype drops the DOCTYPE and inlines the entities its internal subset
// declared, since nothing is left to resolve them afterwards.
func stripDoctype(s string) string {
	dtd := reDoctype.FindString(s)
	if dtd == "" {
		return s
	}
	s = reDoctype.ReplaceAllString(s, "")
	for name, value := range svgdoc.DeclaredEntities(dtd) {
		s = strings.ReplaceAll(s, "&"+name+";", value)
	}
	return s
}
