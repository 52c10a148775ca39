// Package extract turns rich-text fragments from the course provider into
// plain text plus a categorized set of hyperlinks. It is a pure transform:
// no state, no I/O, and malformed markup degrades to a tag-stripping pass
// instead of an error.
package extract

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"canvas_sync/internal/domain"
)

// Content is the result of extracting one rich-text fragment.
type Content struct {
	Text  string
	Links []domain.ExtractedLink
}

// LinksByCategory groups the extracted links for callers that render
// per-category sections.
func (c Content) LinksByCategory(cat domain.LinkCategory) []domain.ExtractedLink {
	var out []domain.ExtractedLink
	for _, l := range c.Links {
		if l.Category == cat {
			out = append(out, l)
		}
	}
	return out
}

// Extractor resolves and categorizes links against the provider's base host.
type Extractor struct {
	base *url.URL
}

// New returns an Extractor anchored at the provider's base URL.
// An unparseable base leaves links unresolved but never fails.
func New(baseURL string) *Extractor {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &Extractor{base: base}
}

var (
	blankLines   = regexp.MustCompile(`\n{3,}`)
	spaceRuns    = regexp.MustCompile(`[ \t]+`)
	spacedBreaks = regexp.MustCompile(` ?\n ?`)
	tagPattern   = regexp.MustCompile(`<[^>]+>`)
)

// Extract parses a rich-text fragment into plain text and links.
func (e *Extractor) Extract(fragment string) Content {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return Content{Text: stripTags(fragment)}
	}

	w := &walker{ex: e}
	w.walk(root)

	return Content{Text: cleanText(strings.Join(w.parts, " ")), Links: w.links}
}

type walker struct {
	ex    *Extractor
	parts []string
	links []domain.ExtractedLink
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return
		case "br":
			w.parts = append(w.parts, "\n")
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6":
			w.parts = append(w.parts, "\n\n")
		case "li":
			w.parts = append(w.parts, "\n• ")
		case "a":
			href := attr(n, "href")
			if href != "" && !strings.HasPrefix(href, "#") && !strings.HasPrefix(href, "javascript:") {
				w.addLink(href, attr(n, "title"), nodeText(n))
			}
		case "iframe":
			if src := attr(n, "src"); src != "" {
				w.addLink(src, attr(n, "title"), "")
			}
		case "video":
			if src := attr(n, "src"); src != "" {
				w.addLink(src, "", "")
			}
		case "source":
			if src := attr(n, "src"); src != "" && strings.HasPrefix(attr(n, "type"), "video") {
				w.addLink(src, "", "")
			}
		}
	}

	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			w.parts = append(w.parts, t)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *walker) addLink(href, title, text string) {
	w.links = append(w.links, w.ex.makeLink(href, title, text))
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(spaceRuns.ReplaceAllString(b.String(), " "))
}

func cleanText(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	s = spacedBreaks.ReplaceAllString(s, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func stripTags(fragment string) string {
	return cleanText(tagPattern.ReplaceAllString(fragment, " "))
}
