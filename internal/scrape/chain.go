package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/appdir-cli/internal/model"
	"github.com/sells-group/appdir-cli/internal/resilience"
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.Code)
}

// Chain tries scrapers in priority order and converts the outcome into a
// fetch status string. It never returns an error: every failure mode is
// folded into the status so one bad row cannot abort a batch.
type Chain struct {
	primary  Scraper
	fallback Scraper // optional
	retry    resilience.RetryConfig
}

// NewChain creates a Chain. fallback may be nil, in which case a primary
// failure is final.
func NewChain(primary Scraper, fallback Scraper) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

// WithRetry enables retrying the primary scraper on transient failures
// (timeouts, resets, 429/5xx). The fallback is never retried; by the time it
// runs the row has already burned its patience budget.
func (c *Chain) WithRetry(cfg resilience.RetryConfig) *Chain {
	c.retry = cfg
	return c
}

func retriableFetch(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return resilience.IsTransientHTTPStatus(se.Code)
	}
	return resilience.IsTransient(err)
}

// BrandIndicators fetches the URL and extracts brand indicators.
//
// Statuses: "no_url" for empty or sentinel URLs, "ok" when the primary
// scraper succeeds, "ok-<name>" when a fallback succeeds, and a descriptive
// failure string ("request_error: ...", "parse_error: ...",
// "<name>_status: ...", "<name>_error: ...") otherwise.
func (c *Chain) BrandIndicators(ctx context.Context, rawURL string) (model.BrandIndicators, string) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" || strings.EqualFold(trimmed, "N/A") {
		return model.BrandIndicators{}, model.FetchStatusNoURL
	}

	body, err := c.fetchPrimary(ctx, trimmed)
	if err == nil {
		ind, perr := ExtractBrandIndicators(body)
		if perr == nil {
			return ind, model.FetchStatusOK
		}
		// Parse failures skip the fallback: refetching the same HTML with a
		// different client will not make it parseable.
		return model.BrandIndicators{}, "parse_error: " + perr.Error()
	}

	lastStatus := "request_error: " + err.Error()

	if c.fallback == nil {
		return model.BrandIndicators{}, lastStatus
	}

	zap.L().Debug("scrape: primary failed, trying fallback",
		zap.String("url", trimmed),
		zap.String("fallback", c.fallback.Name()),
		zap.Error(err),
	)

	body, err = c.fallback.Fetch(ctx, trimmed)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return model.BrandIndicators{}, fmt.Sprintf("%s_status: %d", c.fallback.Name(), se.Code)
		}
		return model.BrandIndicators{}, c.fallback.Name() + "_error: " + err.Error()
	}

	ind, perr := ExtractBrandIndicators(body)
	if perr != nil {
		return model.BrandIndicators{}, "parse_error: " + perr.Error()
	}
	return ind, model.FetchStatusOK + "-" + c.fallback.Name()
}

func (c *Chain) fetchPrimary(ctx context.Context, url string) ([]byte, error) {
	if c.retry.MaxAttempts <= 1 {
		return c.primary.Fetch(ctx, url)
	}
	cfg := c.retry
	cfg.ShouldRetry = retriableFetch
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger("fetch", url)
	}
	return resilience.Do(ctx, cfg, func(ctx context.Context) ([]byte, error) {
		return c.primary.Fetch(ctx, url)
	})
}
