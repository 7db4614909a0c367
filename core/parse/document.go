// Package parse turns fetched markup into a read-only Document that the
// extractors query.
package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page. The HTML5 parser always synthesizes a
// <body>, so Document also records whether the markup contained one.
type Document struct {
	*goquery.Document
	hasBody bool
}

// FromString parses markup into a Document.
func FromString(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	hasBody, err := containsBodyTag(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("scanning HTML: %w", err)
	}
	return &Document{Document: doc, hasBody: hasBody}, nil
}

// Body returns the first <body> element and true, or an empty selection and
// false when the markup had no <body> tag.
func (d *Document) Body() (*goquery.Selection, bool) {
	body := d.Find("body").First()
	if !d.hasBody || body.Length() == 0 {
		return body.Slice(0, 0), false
	}
	return body, true
}

// containsBodyTag reports whether the token stream has a <body> start tag.
func containsBodyTag(r io.Reader) (bool, error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return false, nil
			}
			return false, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tn, _ := z.TagName()
			if string(tn) == "body" {
				return true, nil
			}
		}
	}
}
