package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagescope/core"
)

// TextRenderer produces the plain-text console report.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render formats result as the console report. The error variant is a
// single "Error: ..." line.
func (r *TextRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	var b strings.Builder
	if result.Failed() {
		fmt.Fprintf(&b, "Error: %s\n", result.Error)
		return []byte(b.String()), nil
	}

	page := result.Page
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "Website Analysis Report for: %s\n", page.URL)
	fmt.Fprintf(&b, "%s\n", banner)

	for _, s := range reportSections(page) {
		fmt.Fprintf(&b, "\n--- %s ---\n", s.title)
		for _, line := range s.lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if page.Content != "" {
		b.WriteString("\n--- Main Content ---\n")
		b.WriteString(strings.TrimSpace(page.Content))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n%s\n", banner)
	return []byte(b.String()), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
