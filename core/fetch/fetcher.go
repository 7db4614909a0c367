// Package fetch implements the Fetcher interface.
// It performs a single HTTP GET per page with the configured browser
// User-Agent and timeout.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/internal/platform/config"
	"github.com/gaurav-prasanna/pagescope/internal/platform/errs"
)

// maxResponseBody caps how much of a page is read into memory.
const maxResponseBody = 10 << 20

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// New creates an HTTPFetcher using the timeout and User-Agent from cfg.
func New(cfg config.Config, logger *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Fetch retrieves the HTML content of the given URL. Every failure is
// returned as an *errs.AppError and logged once.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	result, err := f.fetch(ctx, url)
	if err != nil {
		attrs := []any{"url", url, "error", err}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		f.logger.Error("fetch failed", attrs...)
		return nil, err
	}
	return result, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			URL:     url,
			Message: "creating request",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		kind := errs.Unreachable
		if isTimeout(err) {
			kind = errs.Timeout
		}
		return nil, &errs.AppError{
			Kind:    kind,
			URL:     url,
			Message: fmt.Sprintf("fetching %s", url),
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			URL:            url,
			UpstreamStatus: resp.StatusCode,
			Message:        fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, url),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		kind := errs.Unreachable
		if isTimeout(err) {
			kind = errs.Timeout
		}
		return nil, &errs.AppError{
			Kind:    kind,
			URL:     url,
			Message: "reading response body",
			Cause:   err,
		}
	}

	if len(body) > maxResponseBody {
		body = body[:maxResponseBody]
		f.logger.Warn("response body truncated", "url", url, "limit_bytes", maxResponseBody)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
