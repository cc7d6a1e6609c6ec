package htmlstyles

import (
	"strings"

	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/cssom/media"
	"github.com/npillmayer/csskit/cssom/properties"
	"github.com/npillmayer/csskit/tokens"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleElement is a parsed <style> element of an HTML document.
type StyleElement struct {
	Node  *html.Node        // the <style> element
	Media media.MediaList   // from the 'media' attribute, empty if absent
	Sheet *cssom.Stylesheet // parsed content
}

// ExtractStyleElements visits the <head> and <body> elements of an HTML
// parse tree and parses the <style> elements found as their children, in
// document order. The first stylesheet which fails to parse aborts the
// extraction.
func ExtractStyleElements(doc *html.Node, opts ...cssom.Option) ([]*StyleElement, error) {
	var styles []*StyleElement
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		s, err := extractStyles(findElement(a, doc), opts)
		if err != nil {
			return nil, err
		}
		styles = append(styles, s...)
	}
	tracer().Debugf("extracted %d style elements", len(styles))
	return styles, nil
}

func extractStyles(h *html.Node, opts []cssom.Option) ([]*StyleElement, error) {
	if h == nil {
		return nil, nil
	}
	var styles []*StyleElement
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		elem := &StyleElement{Node: ch}
		if m, ok := attr(ch, "media"); ok {
			ml, err := media.ParseMediaList(tokens.NewInput(m))
			if err != nil {
				return nil, err
			}
			elem.Media = ml
		}
		sheet, err := cssom.Parse(textContent(ch), opts...)
		if err != nil {
			tracer().Errorf("<style> element #%d: %v", len(styles), err)
			return nil, err
		}
		elem.Sheet = sheet
		styles = append(styles, elem)
	}
	return styles, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			sb.WriteString(ch.Data)
		}
	}
	return sb.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// InlineStyle parses the 'style' attribute of an element node. Elements
// without the attribute have no declarations.
func InlineStyle(n *html.Node) (properties.PropertyDeclarations, error) {
	s, ok := attr(n, "style")
	if !ok {
		return nil, nil
	}
	return properties.DeclarationParser{}.ParseDeclarationList(tokens.NewInput(s))
}
