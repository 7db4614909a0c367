package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagescope/core"
)

// MarkdownRenderer writes the report as a Markdown document with tables
// for meta tags and links.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown report.
func (r *MarkdownRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	var b strings.Builder
	if result.Failed() {
		fmt.Fprintf(&b, "**Error:** %s\n", result.Error)
		return []byte(b.String()), nil
	}

	page := result.Page
	fmt.Fprintf(&b, "# Website Analysis Report\n\n")
	fmt.Fprintf(&b, "**URL:** <%s>\n", page.URL)

	writeMetaTable(&b, page.Meta)
	writeHeadingLists(&b, page.Headings)
	writeImageSummary(&b, page.Images)
	writeLinkTable(&b, page.Links)

	b.WriteString("\n## Content Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Approx. word count | %d |\n", page.Metrics.WordCount)
	fmt.Fprintf(&b, "| Paragraphs | %d |\n", page.Metrics.ParagraphCount)
	fmt.Fprintf(&b, "| External stylesheets | %d |\n", page.Metrics.StylesheetCount)
	fmt.Fprintf(&b, "| External scripts | %d |\n", page.Metrics.ScriptCount)

	if page.Content != "" {
		b.WriteString("\n## Main Content\n\n")
		b.WriteString(strings.TrimSpace(page.Content))
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func writeMetaTable(b *strings.Builder, meta *core.MetaTags) {
	b.WriteString("\n## SEO/Meta Information\n\n")
	lines := 0
	for _, tag := range meta.Entries() {
		value := tag.Value()
		if value == "" {
			continue
		}
		if lines == 0 {
			b.WriteString("| Tag | Content |\n|---|---|\n")
		}
		fmt.Fprintf(b, "| %s | %s |\n", cell(displayKey(tag.Key)), cell(value))
		lines++
	}
	if lines == 0 {
		b.WriteString("_No meta information found._\n")
	}
}

func writeHeadingLists(b *strings.Builder, headings core.HeadingSet) {
	b.WriteString("\n## Headings\n")
	for _, level := range core.HeadingLevels {
		texts := headings[level]
		label := strings.ToUpper(level)
		if len(texts) == 0 {
			fmt.Fprintf(b, "\n### %s\n\nNone found\n", label)
			continue
		}
		fmt.Fprintf(b, "\n### %s (%d found)\n\n", label, len(texts))
		for _, text := range texts {
			fmt.Fprintf(b, "- %s\n", text)
		}
	}
}

func writeImageSummary(b *strings.Builder, images core.ImageSummary) {
	b.WriteString("\n## Images\n\n")
	fmt.Fprintf(b, "- Total images: %d\n", images.Total)
	if images.Total == 0 {
		return
	}

	withAlt, missing := altStats(images)
	fmt.Fprintf(b, "- With alt text: %d\n", withAlt)
	fmt.Fprintf(b, "- Missing alt text: %d\n", missing)
	if missing > 0 {
		b.WriteString("\n> Consider adding alt text for accessibility and SEO.\n")
	}

	if common := commonAltTexts(images.Images, maxAltTexts); len(common) > 0 {
		b.WriteString("\n**Most common alt texts**\n\n")
		for _, alt := range common {
			fmt.Fprintf(b, "- %q (x%d)\n", alt.text, alt.count)
		}
	}
}

func writeLinkTable(b *strings.Builder, links core.LinkSummary) {
	b.WriteString("\n## Links\n\n")
	fmt.Fprintf(b, "- Total links: %d\n", links.Total)
	fmt.Fprintf(b, "- Internal: %d\n", links.InternalCount)
	fmt.Fprintf(b, "- External: %d\n", links.ExternalCount)
	if links.Total == 0 {
		return
	}

	b.WriteString("\n| Type | Text | URL |\n|---|---|---|\n")
	for _, link := range links.Internal {
		fmt.Fprintf(b, "| internal | %s | %s |\n", cell(linkLabel(link)), cell(link.Href))
	}
	for _, link := range links.External {
		fmt.Fprintf(b, "| external | %s | %s |\n", cell(linkLabel(link)), cell(link.Href))
	}
}

// cell escapes a value for use inside a Markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
