package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/parse"
)

// Meta collects <meta> tags keyed by name, or by property for Open Graph
// style tags. Later duplicates overwrite earlier ones. The first <title>
// is stored under "title", replacing any meta tag of that name.
func Meta(doc *parse.Document) *core.MetaTags {
	tags := core.NewMetaTags()

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key := s.AttrOr("name", "")
		if key == "" {
			key = s.AttrOr("property", "")
		}
		if key == "" {
			return
		}

		if content, ok := s.Attr("content"); ok {
			tags.SetString(key, content)
		} else {
			tags.Set(key, nil)
		}
	})

	if title := doc.Find("title").First(); title.Length() > 0 {
		tags.SetString("title", parse.Text(title))
	}

	return tags
}
