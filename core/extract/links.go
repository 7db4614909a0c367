package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/parse"
)

// Links resolves every <a href> against base and classifies it as internal
// when its authority matches the base URL's, external otherwise. Absolute
// http(s) hrefs are reported as written. Anchors without an href are
// ignored.
func Links(doc *parse.Document, base *url.URL) core.LinkSummary {
	summary := core.LinkSummary{
		Internal: []core.Link{},
		External: []core.Link{},
	}
	baseAuthority := authority(base)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)

		link := core.Link{Text: parse.Text(s)}
		summary.Total++

		absolute, resolved, err := resolve(href, base)
		link.Href = absolute
		if err != nil {
			// Kept verbatim; it cannot share the page's authority.
			summary.External = append(summary.External, link)
			return
		}

		if authority(resolved) == baseAuthority {
			summary.Internal = append(summary.Internal, link)
		} else {
			summary.External = append(summary.External, link)
		}
	})

	summary.InternalCount = len(summary.Internal)
	summary.ExternalCount = len(summary.External)
	return summary
}
