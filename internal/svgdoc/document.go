package svgdoc

import (
	"encoding/xml"
	"errors"
	"io"
	"maps"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// Namespace is the SVG namespace declared on composed documents.
const Namespace = "http://www.w3.org/2000/svg"

// symbolAttrs lists, in emission order, the root attributes copied onto a symbol.
var symbolAttrs = []string{"class", "preserveAspectRatio", "viewBox"}

var (
	reEncoding   = regexp.MustCompile(`^\s*<\?xml[^>]*?\bencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reEntityDecl = regexp.MustCompile(`(?s)<!ENTITY\s+([A-Za-z_][\w.:-]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)
	reEntityRef  = regexp.MustCompile(`&([A-Za-z_][\w.:-]*);`)

	attrEscaper   = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;")
	entityEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `'`, "&#39;", `<`, "&lt;", `>`, "&gt;")
)

// predefined entities are valid in any XML output and are left as written.
var predefined = map[string]bool{"amp": true, "lt": true, "gt": true, "quot": true, "apos": true}

// Document is a parsed SVG document.
type Document struct {
	attrs []xml.Attr
	inner string
}

// Parse reads markup and locates its root <svg> element.
func Parse(markup string) (*Document, error) {
	src, err := toUTF8(markup)
	if err != nil {
		return nil, malformed("unsupported document encoding", err)
	}

	dec := xml.NewDecoder(strings.NewReader(src))
	dec.Strict = true
	// src is already UTF-8; a declared legacy encoding must not be decoded twice.
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	// HTML named entities plus whatever the internal DTD subset declares.
	entities := make(map[string]string, len(xml.HTMLEntity))
	maps.Copy(entities, xml.HTMLEntity)
	dec.Entity = entities

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, malformed("no <svg> root element", nil)
			}
			return nil, malformed("invalid markup", err)
		}

		switch tok := tok.(type) {
		case xml.Directive:
			maps.Copy(entities, DeclaredEntities(string(tok)))
		case xml.StartElement:
			if tok.Name.Local != "svg" {
				continue
			}
			inner, err := readInner(dec, src, entities)
			if err != nil {
				return nil, malformed("invalid markup", err)
			}
			return &Document{attrs: tok.Attr, inner: inner}, nil
		}
	}
}

// DeclaredEntities returns the general internal entities declared in a DTD,
// as in <!ENTITY ns_svg "http://www.w3.org/2000/svg">.
func DeclaredEntities(dtd string) map[string]string {
	out := map[string]string{}
	for _, m := range reEntityDecl.FindAllStringSubmatch(dtd, -1) {
		out[m[1]] = m[2] + m[3]
	}
	return out
}

// readInner collects the raw markup between the current start element and its end,
// collapsing whitespace runs inside character data. References to non-XML
// entities are expanded so the markup stands alone.
func readInner(dec *xml.Decoder, src string, entities map[string]string) (string, error) {
	var b strings.Builder
	depth := 0

	for {
		from := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		raw := src[from:dec.InputOffset()]

		switch tok.(type) {
		case xml.StartElement:
			depth++
			raw = expandEntities(raw, entities)
		case xml.EndElement:
			if depth == 0 {
				return b.String(), nil
			}
			depth--
		case xml.CharData:
			raw = expandEntities(reWhitespace.ReplaceAllString(raw, " "), entities)
		}
		b.WriteString(raw)
	}
}

func expandEntities(raw string, entities map[string]string) string {
	if !strings.Contains(raw, "&") {
		return raw
	}
	return reEntityRef.ReplaceAllStringFunc(raw, func(ref string) string {
		name := ref[1 : len(ref)-1]
		if predefined[name] {
			return ref
		}
		if v, ok := entities[name]; ok {
			return entityEscaper.Replace(v)
		}
		return ref
	})
}

// Attr returns the root attribute with the given name. The exact name is tried
// first, then its lower-case form.
func (d *Document) Attr(name string) (string, bool) {
	if v, ok := d.lookup(name); ok {
		return v, true
	}
	if lower := strings.ToLower(name); lower != name {
		return d.lookup(lower)
	}
	return "", false
}

func (d *Document) lookup(name string) (string, bool) {
	for _, a := range d.attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ViewBox returns the root viewBox attribute.
func (d *Document) ViewBox() (string, bool) {
	return d.Attr("viewBox")
}

// Inner returns the markup inside the root element.
func (d *Document) Inner() string {
	return d.inner
}

// Symbol renders the document as a <symbol> with the given id. Only class,
// preserveAspectRatio and viewBox survive from the root, and only when non-empty.
func (d *Document) Symbol(id string) string {
	attrs := make([]string, 0, len(symbolAttrs)+1)
	attrs = append(attrs, formatAttr("id", id))

	for _, name := range symbolAttrs {
		if v, ok := d.Attr(name); ok && v != "" {
			attrs = append(attrs, formatAttr(name, v))
		}
	}

	return "<symbol " + strings.Join(attrs, " ") + ">" + d.inner + "</symbol>"
}

// Compose wraps fragments in a root <svg> carrying the SVG namespace.
func Compose(fragments ...string) string {
	return `<svg xmlns="` + Namespace + `">` + strings.Join(fragments, "") + "</svg>"
}

// Defs wraps fragments in a non-rendering <defs> container.
func Defs(fragments ...string) string {
	return "<defs>" + strings.Join(fragments, "") + "</defs>"
}

func formatAttr(name, value string) string {
	return name + `="` + attrEscaper.Replace(value) + `"`
}

func toUTF8(markup string) (string, error) {
	markup = strings.TrimPrefix(markup, "\ufeff")

	m := reEncoding.FindStringSubmatch(markup)
	if m == nil {
		return markup, nil
	}
	label := strings.ToLower(m[1])
	if label == "utf-8" || label == "utf8" {
		return markup, nil
	}

	r, err := charset.NewReaderLabel(label, strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// malformed reports bad markup. The kind already names the failure and
// errors.Is(err, domain.ErrMalformedMarkup) holds through the kind.
func malformed(msg string, cause error) error {
	return &domain.DomainError{
		Kind:  domain.KindMalformedMarkup,
		Msg:   msg,
		Cause: cause,
	}
}
