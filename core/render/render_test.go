package render

import "github.com/gaurav-prasanna/pagescope/core"

// samplePage returns a small, fully populated analysis.
func samplePage() *core.PageAnalysis {
	meta := core.NewMetaTags()
	meta.SetString("description", "A sample page")
	meta.SetString("og:title", "Hi")
	meta.Set("robots", nil)
	meta.SetString("keywords", "")
	meta.SetString("title", "Sample")

	headings := core.NewHeadingSet()
	headings["h1"] = []string{"Hello"}
	headings["h2"] = []string{"World"}

	return &core.PageAnalysis{
		URL:      "https://example.com",
		Headings: headings,
		Images: core.ImageSummary{
			Total: 3,
			Images: []core.Image{
				{Src: "https://example.com/a.png", Alt: "Logo"},
				{Src: "https://example.com/b.png"},
				{Src: "https://example.com/c.png", Alt: "Logo"},
			},
		},
		Links: core.LinkSummary{
			Total:         2,
			Internal:      []core.Link{{Href: "https://example.com/about", Text: "About"}},
			External:      []core.Link{{Href: "https://other.com"}},
			InternalCount: 1,
			ExternalCount: 1,
		},
		Meta:    meta,
		Metrics: core.ContentMetrics{WordCount: 120, ParagraphCount: 4, StylesheetCount: 2, ScriptCount: 1},
	}
}
