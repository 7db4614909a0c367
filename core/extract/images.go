package extract

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/parse"
)

// Images describes every <img> element. Relative sources are resolved
// against base; Total counts images with and without a src.
func Images(doc *parse.Document, base *url.URL) core.ImageSummary {
	imgs := doc.Find("img")
	summary := core.ImageSummary{
		Total:  imgs.Length(),
		Images: make([]core.Image, 0, imgs.Length()),
	}

	imgs.Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if src != "" && !isAbsoluteRef(src) {
			src = resolveURL(src, base)
		}

		summary.Images = append(summary.Images, core.Image{
			Src:    src,
			Alt:    s.AttrOr("alt", ""),
			Width:  s.AttrOr("width", ""),
			Height: s.AttrOr("height", ""),
		})
	})

	return summary
}
