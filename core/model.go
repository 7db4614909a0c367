package core

import (
	"encoding/json"
	"fmt"
)

// HeadingLevels lists the heading tags in report order.
var HeadingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// HeadingSet maps each heading level to the non-empty heading texts found,
// in document order. Every level in HeadingLevels is present.
type HeadingSet map[string][]string

// NewHeadingSet returns a HeadingSet with an empty entry for every level.
func NewHeadingSet() HeadingSet {
	hs := make(HeadingSet, len(HeadingLevels))
	for _, level := range HeadingLevels {
		hs[level] = []string{}
	}
	return hs
}

// Image describes one <img> element. Src is absolute unless the page used a
// protocol-relative or unparsable reference; it is empty when absent.
type Image struct {
	Src    string `json:"src,omitempty"`
	Alt    string `json:"alt"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// ImageSummary counts every <img> element, including ones without a src.
type ImageSummary struct {
	Total  int     `json:"total_images"`
	Images []Image `json:"image_details"`
}

// Link is a resolved anchor with its visible text.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// LinkSummary splits the page's anchors by authority.
type LinkSummary struct {
	Total         int    `json:"total_links"`
	Internal      []Link `json:"internal_links"`
	External      []Link `json:"external_links"`
	InternalCount int    `json:"internal_count"`
	ExternalCount int    `json:"external_count"`
}

// ContentMetrics holds the text and asset counts of a page.
type ContentMetrics struct {
	WordCount       int `json:"word_count"`
	ParagraphCount  int `json:"paragraph_count"`
	StylesheetCount int `json:"stylesheet_count"`
	ScriptCount     int `json:"script_count"`
}

// PageAnalysis is the successful outcome of analyzing one page.
type PageAnalysis struct {
	URL      string         `json:"url"`
	Headings HeadingSet     `json:"headings"`
	Images   ImageSummary   `json:"images"`
	Links    LinkSummary    `json:"links"`
	Meta     *MetaTags      `json:"meta_tags"`
	Metrics  ContentMetrics `json:"content_metrics"`
	// Content is a Markdown rendition of the page's main content. It is
	// only filled when requested.
	Content string `json:"content,omitempty"`
}

// AnalysisResult holds either a PageAnalysis or an error message, never
// both. Build it with Succeeded or Failed.
type AnalysisResult struct {
	Page  *PageAnalysis
	Error string
}

// Succeeded wraps a completed analysis.
func Succeeded(page *PageAnalysis) *AnalysisResult {
	return &AnalysisResult{Page: page}
}

// Failed returns the result reported when url could not be fetched or parsed.
func Failed(url string) *AnalysisResult {
	return &AnalysisResult{Error: fmt.Sprintf("Could not fetch or parse %s", url)}
}

// Failed reports whether r is the error variant.
func (r *AnalysisResult) Failed() bool {
	return r.Page == nil
}

// MarshalJSON encodes the page object, or {"error": ...} for failures.
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}
	return json.Marshal(r.Page)
}
