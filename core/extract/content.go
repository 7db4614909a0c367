package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/pagescope/core/parse"
)

// noiseMatcher selects elements removed before taking the content excerpt.
// These contribute no meaningful content to the page text.
var noiseMatcher = cascadia.MustCompile(
	"script, style, noscript, nav, footer, header, " +
		"img, picture, figure, figcaption, iframe, video, audio, svg, canvas, " +
		"form, button, input, select, textarea, " +
		".sidebar, .menu, .navigation, .ads, .advertisement",
)

// MainContent returns the outer HTML of the page's main content container
// (<main>, then <article>, then <body>) with noise elements stripped.
// The document itself is left untouched.
func MainContent(doc *parse.Document) (string, error) {
	markup, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	root, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole copy).
	root.FindMatcher(noiseMatcher).Remove()

	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := root.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}
