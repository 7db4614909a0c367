// Package analyze runs the single-page pipeline: fetch, parse, then every
// extractor over the same document.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/extract"
	"github.com/gaurav-prasanna/pagescope/core/parse"
	"github.com/gaurav-prasanna/pagescope/internal/platform/errs"
	"github.com/google/uuid"
)

// Options tunes what an analysis includes beyond the core report.
type Options struct {
	// IncludeContent adds a Markdown excerpt of the page's main content.
	IncludeContent bool
}

// Analyzer turns a URL into a core.AnalysisResult.
type Analyzer struct {
	fetcher    core.Fetcher
	normalizer core.Normalizer
	logger     *slog.Logger
	opts       Options
}

// New returns an Analyzer. normalizer is only used when opts.IncludeContent
// is set.
func New(fetcher core.Fetcher, normalizer core.Normalizer, logger *slog.Logger, opts Options) *Analyzer {
	return &Analyzer{
		fetcher:    fetcher,
		normalizer: normalizer,
		logger:     logger,
		opts:       opts,
	}
}

// Analyze fetches and inspects one page. A page that cannot be fetched or
// parsed yields the error variant; no extractor runs in that case.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) *core.AnalysisResult {
	logger := a.logger.With("url", rawURL, "analysis_id", uuid.NewString())
	logger.Info("Analyzing")

	base, err := url.Parse(rawURL)
	if err != nil {
		logger.Error("invalid URL", "error", err)
		return core.Failed(rawURL)
	}

	fetched, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		logger.Debug("fetch failed", "error", err)
		return core.Failed(rawURL)
	}

	doc, err := parse.FromString(fetched.HTML)
	if err != nil {
		logger.Error("analysis failed", "error", &errs.AppError{
			Kind:    errs.ParsingFailed,
			URL:     rawURL,
			Message: "Failed to parse the HTML content.",
			Cause:   err,
		})
		return core.Failed(rawURL)
	}

	page := &core.PageAnalysis{
		URL:      rawURL,
		Headings: extract.Headings(doc),
		Images:   extract.Images(doc, base),
		Links:    extract.Links(doc, base),
		Meta:     extract.Meta(doc),
		Metrics:  extract.Metrics(doc),
	}

	if a.opts.IncludeContent {
		content, err := a.excerpt(doc)
		if err != nil {
			// The report is still useful without the excerpt.
			logger.Warn("content excerpt failed", "error", err)
		} else {
			page.Content = content
		}
	}

	logger.Info("Analysis complete",
		"meta_tags", page.Meta.Len(),
		"images", page.Images.Total,
		"internal_links", page.Links.InternalCount,
		"external_links", page.Links.ExternalCount,
		"word_count", page.Metrics.WordCount,
	)
	return core.Succeeded(page)
}

func (a *Analyzer) excerpt(doc *parse.Document) (string, error) {
	content, err := extract.MainContent(doc)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	markdown, err := a.normalizer.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return markdown, nil
}
