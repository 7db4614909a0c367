package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the report as an A4 PDF using gofpdf.
// The optional content excerpt is drawn from its Markdown: headings get
// variable font sizes, code blocks a monospace font. Images are not drawn.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts result into PDF bytes.
func (r *PDFRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate UTF-8 text before drawing it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if result.Failed() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr("Error: "+result.Error), "", "L", false)
		return output(pdf)
	}

	page := result.Page
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Website Analysis Report", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+page.URL), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, s := range reportSections(page) {
		renderHeading(pdf, tr(s.title), 2)
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range s.lines {
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
	}

	if page.Content != "" {
		renderHeading(pdf, "Main Content", 2)
		renderMarkdown(pdf, tr, page.Content)
	}

	return output(pdf)
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

var numberedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// renderMarkdown draws Markdown line by line.
func renderMarkdown(pdf *gofpdf.Fpdf, tr func(string) string, markdown string) {
	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for _, line := range lines {
		// Toggle code block state.
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		if strings.HasPrefix(line, "#") {
			level := len(line) - len(strings.TrimLeft(line, "#"))
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, tr(cleanInlineMarkdown(text)), level)
			continue
		}

		trimmed := strings.TrimSpace(line)
		pdf.SetFont("Helvetica", "", 10)
		switch {
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			// cp1252 has a bullet at 0x95.
			text := "\x95 " + tr(cleanInlineMarkdown(trimmed[2:]))
			pdf.MultiCell(0, 5, text, "", "L", false)
		case numberedItemRegex.MatchString(trimmed):
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
		}
	}
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 14, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

var (
	italicRegex     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Italic markers only at word boundaries, so "don't" survives.
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = mdLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
