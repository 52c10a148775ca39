package extract

import (
	"net/url"
	"strings"

	"canvas_sync/internal/domain"
)

// Query parameters the provider's redirect/launch wrappers carry the real
// destination in.
var redirectParams = []string{"url", "redirect", "redirect_uri", "return_to", "next", "target"}

var videoHostFragments = []string{"youtube.com", "youtu.be", "vimeo.com", "kaltura", "panopto"}

// Link builds a categorized link from a raw href outside of any HTML
// body, applying the same resolution rules as body extraction.
func (e *Extractor) Link(href, title, text string) domain.ExtractedLink {
	return e.makeLink(href, title, text)
}

func (e *Extractor) makeLink(href, title, text string) domain.ExtractedLink {
	abs := e.absolute(href)
	resolved := e.unwrapRedirect(abs)

	return domain.ExtractedLink{
		URL:         abs,
		ResolvedURL: resolved,
		Text:        text,
		Title:       title,
		Category:    e.categorize(resolved),
	}
}

func (e *Extractor) absolute(href string) string {
	if e.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return e.base.ResolveReference(ref).String()
}

// unwrapRedirect resolves a provider-hosted wrapper URL to its external
// target. The destination parameter is frequently double-encoded by the
// provider's own link wrapping, so the value is percent-decoded up to
// twice before being accepted. Only a decoded address on a different host
// counts; anything else keeps the original absolute form.
func (e *Extractor) unwrapRedirect(abs string) string {
	if e.base == nil {
		return abs
	}
	u, err := url.Parse(abs)
	if err != nil || !strings.EqualFold(u.Host, e.base.Host) {
		return abs
	}

	q := u.Query()
	for _, p := range redirectParams {
		v := q.Get(p)
		if v == "" {
			continue
		}
		// Query() already applied one decode; apply a second one when the
		// value still looks encoded.
		if !strings.Contains(v, "://") {
			if d, err := url.QueryUnescape(v); err == nil {
				v = d
			}
		}
		target, err := url.Parse(v)
		if err != nil || !target.IsAbs() || target.Host == "" {
			continue
		}
		if !strings.EqualFold(target.Host, e.base.Host) {
			return target.String()
		}
	}
	return abs
}

// categorize classifies the resolved address. Order matters: a file link
// on a video host is still a file.
func (e *Extractor) categorize(resolved string) domain.LinkCategory {
	lower := strings.ToLower(resolved)

	if strings.HasPrefix(lower, "mailto:") {
		return domain.LinkCategoryExternal
	}

	u, err := url.Parse(resolved)
	if err != nil {
		return domain.LinkCategoryOther
	}

	if strings.Contains(u.Path, "/files/") {
		return domain.LinkCategoryFile
	}

	host := strings.ToLower(u.Host)
	for _, v := range videoHostFragments {
		if strings.Contains(host, v) {
			return domain.LinkCategoryVideo
		}
	}
	if strings.Contains(u.Path, "/media_objects/") || strings.Contains(u.Path, "/media/") {
		return domain.LinkCategoryVideo
	}

	if e.base != nil && strings.EqualFold(u.Host, e.base.Host) {
		return domain.LinkCategoryInternal
	}
	if u.IsAbs() && u.Host != "" {
		return domain.LinkCategoryExternal
	}

	return domain.LinkCategoryOther
}

// IsZoomRelated reports whether a link points at a videoconference. The
// provider frequently hides Zoom launches behind host-local LTI tool
// addresses, so in addition to the resolved host this checks for the
// literal substring "zoom" in the URL, the link's display text and title,
// and the title of the item that contained the link.
func IsZoomRelated(link domain.ExtractedLink, itemTitle string) bool {
	for _, raw := range []string{link.ResolvedURL, link.URL} {
		if u, err := url.Parse(raw); err == nil {
			host := strings.ToLower(u.Host)
			if host == "zoom.us" || strings.HasSuffix(host, ".zoom.us") {
				return true
			}
		}
	}
	for _, s := range []string{link.URL, link.ResolvedURL, link.Text, link.Title, itemTitle} {
		if strings.Contains(strings.ToLower(s), "zoom") {
			return true
		}
	}
	return false
}
