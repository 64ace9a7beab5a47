package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func emittedLabel(sr domain.SpriteReport) string {
	switch {
	case sr.Error != "":
		return "failed"
	case sr.Emitted:
		return "emitted"
	default:
		return "not emitted"
	}
}

func renderSpriteDetails(sr domain.SpriteReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:    %s\n", sr.Name)
	fmt.Fprintf(&b, "Logical: %s\n", sr.LogicalPath)
	fmt.Fprintf(&b, "Final:   %s\n", sr.FinalPath)
	fmt.Fprintf(&b, "Size:    %d bytes (%s)\n", sr.Size, emittedLabel(sr))
	if sr.Error != "" {
		b.WriteString("\nError:\n  ")
		b.WriteString(sr.Error)
		b.WriteString("\n")
	}
	return b.String()
}

func renderIconDetails(ir domain.IconReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Symbol: %s\n", ir.Symbol)
	fmt.Fprintf(&b, "Source: %s\n", ir.Source)
	fmt.Fprintf(&b, "URL:    %s\n", ir.URL)
	fmt.Fprintf(&b, "\n<svg><use href=\"%s\"/></svg>\n", ir.URL)
	return b.String()
}

func renderFailures(in []domain.IconFailure) string {
	if len(in) == 0 {
		return "No icon failures."
	}

	var b strings.Builder
	for _, f := range in {
		fmt.Fprintf(&b, "- %s [%s]\n  sprite: %s\n  %s\n", f.Source, f.Kind, f.Sprite, clampString(f.Message, 200))
	}
	return b.String()
}
