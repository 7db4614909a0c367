package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/parse"
)

// Headings collects the text of every h1..h6 element in document order,
// dropping headings whose text is empty.
func Headings(doc *parse.Document) core.HeadingSet {
	headings := core.NewHeadingSet()

	for _, tag := range core.HeadingLevels {
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			if text := parse.Text(s); text != "" {
				headings[tag] = append(headings[tag], text)
			}
		})
	}

	return headings
}
