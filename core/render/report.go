// Package render provides output renderers for analysis results.
// The text layout shared by the text and PDF renderers lives here.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/pagescope/core"
)

const (
	bannerWidth   = 60
	metaMaxLen    = 100
	headingMaxLen = 70
	altMaxLen     = 50

	maxHeadingsShown = 5
	maxAltTexts      = 3
	maxExampleLinks  = 3
)

// section is one titled block of the report.
type section struct {
	title string
	lines []string
}

// reportSections lays out the report body in its fixed section order.
func reportSections(page *core.PageAnalysis) []section {
	return []section{
		{title: "SEO/Meta Information", lines: metaLines(page.Meta)},
		{title: "Headings Summary", lines: headingLines(page.Headings)},
		{title: "Image Summary", lines: imageLines(page.Images)},
		{title: "Link Summary", lines: linkLines(page.Links)},
		{title: "Content Metrics", lines: metricLines(page.Metrics)},
	}
}

func metaLines(meta *core.MetaTags) []string {
	var lines []string
	for _, tag := range meta.Entries() {
		value := tag.Value()
		if value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", displayKey(tag.Key), truncate(value, metaMaxLen)))
	}
	return lines
}

func headingLines(headings core.HeadingSet) []string {
	var lines []string
	for _, level := range core.HeadingLevels {
		texts := headings[level]
		label := strings.ToUpper(level)
		if len(texts) == 0 {
			lines = append(lines, fmt.Sprintf("  %s: None found", label))
			continue
		}

		lines = append(lines, fmt.Sprintf("  %s (%d found):", label, len(texts)))
		for _, text := range texts[:min(len(texts), maxHeadingsShown)] {
			lines = append(lines, "    - "+truncate(text, headingMaxLen))
		}
		if len(texts) > maxHeadingsShown {
			lines = append(lines, fmt.Sprintf("    ... %d more", len(texts)-maxHeadingsShown))
		}
	}
	return lines
}

func imageLines(images core.ImageSummary) []string {
	lines := []string{fmt.Sprintf("  Total Images: %d", images.Total)}
	if images.Total == 0 {
		return lines
	}

	withAlt, missing := altStats(images)
	lines = append(lines,
		fmt.Sprintf("  Images with Alt text: %d", withAlt),
		fmt.Sprintf("  Images with Missing Alt text: %d", missing),
	)
	if missing > 0 {
		lines = append(lines, "  (Consider adding alt text for accessibility and SEO)")
	}

	if common := commonAltTexts(images.Images, maxAltTexts); len(common) > 0 {
		lines = append(lines, "  Most common Alt texts:")
		for _, alt := range common {
			lines = append(lines, fmt.Sprintf("    - '%s' (x%d)", truncate(alt.text, altMaxLen), alt.count))
		}
	}
	return lines
}

func linkLines(links core.LinkSummary) []string {
	lines := []string{
		fmt.Sprintf("  Total Links: %d", links.Total),
		fmt.Sprintf("  Internal Links: %d", links.InternalCount),
		fmt.Sprintf("  External Links: %d", links.ExternalCount),
	}
	if links.InternalCount > 0 {
		lines = append(lines, "  Example Internal Links:")
		lines = append(lines, exampleLinks(links.Internal)...)
	}
	if links.ExternalCount > 0 {
		lines = append(lines, "  Example External Links:")
		lines = append(lines, exampleLinks(links.External)...)
	}
	return lines
}

func exampleLinks(links []core.Link) []string {
	lines := make([]string, 0, maxExampleLinks)
	for _, link := range links[:min(len(links), maxExampleLinks)] {
		lines = append(lines, fmt.Sprintf("    - [%s](%s)", linkLabel(link), link.Href))
	}
	return lines
}

func metricLines(m core.ContentMetrics) []string {
	return []string{
		fmt.Sprintf("  Approx. Word Count: %d", m.WordCount),
		fmt.Sprintf("  Paragraphs Found: %d", m.ParagraphCount),
		fmt.Sprintf("  External Stylesheets: %d", m.StylesheetCount),
		fmt.Sprintf("  External Scripts: %d", m.ScriptCount),
	}
}

// truncate shortens s to n runes and marks the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// displayKey turns an Open Graph key such as "og:title" into a label.
func displayKey(key string) string {
	if rest, ok := strings.CutPrefix(key, "og:"); ok {
		return "Open Graph " + rest
	}
	return key
}

func linkLabel(link core.Link) string {
	if link.Text == "" {
		return "No Text"
	}
	return link.Text
}

// altStats splits the image total into images with and without alt text.
func altStats(images core.ImageSummary) (withAlt, missing int) {
	for _, img := range images.Images {
		if img.Alt != "" {
			withAlt++
		}
	}
	return withAlt, images.Total - withAlt
}

type altCount struct {
	text  string
	count int
}

// commonAltTexts returns up to n non-empty alt texts, most frequent first.
// Equal counts keep first-seen order.
func commonAltTexts(images []core.Image, n int) []altCount {
	var counts []altCount
	index := make(map[string]int)
	for _, img := range images {
		if img.Alt == "" {
			continue
		}
		if i, ok := index[img.Alt]; ok {
			counts[i].count++
			continue
		}
		index[img.Alt] = len(counts)
		counts = append(counts, altCount{text: img.Alt, count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	return counts[:min(len(counts), n)]
}
