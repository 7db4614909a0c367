package render

import (
	"fmt"

	"github.com/gaurav-prasanna/pagescope/core"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatPDF, FormatXLSX}

// Binary reports whether the format cannot be printed to a terminal.
func (f Format) Binary() bool {
	return f == FormatPDF || f == FormatXLSX
}

// New returns the Renderer for format.
func New(format Format) (core.Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	case FormatXLSX:
		return NewXLSXRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
