package extract

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/parse"
)

var (
	stylesheetMatcher     = cascadia.MustCompile("link[rel~=stylesheet]")
	externalScriptMatcher = cascadia.MustCompile("script[src]")
)

// Metrics counts words and paragraphs inside <body>, plus stylesheets and
// external scripts across the whole document. Without a <body> the word and
// paragraph counts are zero.
func Metrics(doc *parse.Document) core.ContentMetrics {
	metrics := core.ContentMetrics{
		StylesheetCount: doc.FindMatcher(stylesheetMatcher).Length(),
		ScriptCount:     doc.FindMatcher(externalScriptMatcher).Length(),
	}

	body, ok := doc.Body()
	if !ok {
		return metrics
	}

	metrics.WordCount = len(strings.Fields(parse.VisibleText(body)))
	metrics.ParagraphCount = body.Find("p").Length()
	return metrics
}
