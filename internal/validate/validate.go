// Package validate runs the vendor validation batch: fetch brand indicators
// per directory row, score them against the current vendor, and aggregate an
// audit report. Rows are processed one at a time in table order; the only
// throughput ceiling is the politeness delay between fetches.
package validate

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/appdir-cli/internal/brand"
	"github.com/sells-group/appdir-cli/internal/model"
	"github.com/sells-group/appdir-cli/internal/sheet"
)

// IndicatorSource yields brand indicators for a URL. *scrape.Chain is the
// production implementation; tests stub it.
type IndicatorSource interface {
	BrandIndicators(ctx context.Context, url string) (model.BrandIndicators, string)
}

// Options tunes a validation run.
type Options struct {
	// Delay between successive network fetches. Politeness toward third-party
	// servers, not a correctness requirement.
	Delay time.Duration

	// ProgressEvery controls how often row progress is logged.
	ProgressEvery int
}

func (o Options) withDefaults() Options {
	if o.Delay == 0 {
		o.Delay = 500 * time.Millisecond
	}
	if o.ProgressEvery == 0 {
		o.ProgressEvery = 25
	}
	return o
}

// Run validates every directory row and returns one record per row, in input
// order, plus the aggregate summary. A failed fetch never aborts the batch;
// the only error path is context cancellation.
func Run(ctx context.Context, rows []model.DirectoryRow, src IndicatorSource, opts Options) ([]model.ValidationRecord, model.Summary, error) {
	opts = opts.withDefaults()
	limiter := rate.NewLimiter(rate.Every(opts.Delay), 1)

	records := make([]model.ValidationRecord, 0, len(rows))
	var sum model.Summary

	for i, row := range rows {
		if err := limiter.Wait(ctx); err != nil {
			return records, sum, eris.Wrap(err, "validate: wait for rate limiter")
		}

		ind, status := src.BrandIndicators(ctx, row.OfficialURL)
		rec := buildRecord(i, row.Name, row.OfficialURL, row.Vendor, ind, status)
		records = append(records, rec)
		sum.Add(rec)

		if (i+1)%opts.ProgressEvery == 0 {
			zap.L().Info("validate: progress",
				zap.Int("validated", i+1),
				zap.Int("total", len(rows)),
			)
		}
	}

	zap.L().Info("validate: complete",
		zap.Int("total", sum.Total),
		zap.Int("exact", sum.Exact),
		zap.Int("substring", sum.Substring),
		zap.Int("fuzzy", sum.Fuzzy),
		zap.Int("mismatch", sum.Mismatch),
		zap.Int("unknown_brand", sum.UnknownBrand),
		zap.Int("fetch_failed", sum.FetchFailed),
	)

	return records, sum, nil
}

// buildRecord folds one fetch outcome into a validation record. The vendor
// value is only ever replaced on a confirmed non-match with a usable
// alternative brand.
func buildRecord(rowIndex int, name, rawURL, vendor string, ind model.BrandIndicators, status string) model.ValidationRecord {
	best := brand.PickBestBrand(ind, rawURL)
	matchStatus, similarity, isMatch := brand.Compare(vendor, best)

	suggested := vendor
	if !isMatch && best != "" {
		suggested = best
	}

	return model.ValidationRecord{
		RowIndex:        rowIndex,
		AppName:         name,
		OfficialURL:     rawURL,
		CurrentVendor:   vendor,
		Indicators:      ind,
		BestBrand:       best,
		MatchStatus:     matchStatus,
		Similarity:      similarity,
		Confidence:      model.ConfidenceFor(matchStatus),
		SuggestedVendor: suggested,
		FetchStatus:     status,
	}
}

// ApplySuggestions writes suggested vendors back into the directory table by
// row index, skipping empty suggestions. Rows whose vendor already matched
// carry their current value as the suggestion, so this is a no-op for them.
func ApplySuggestions(t *sheet.Table, records []model.ValidationRecord) {
	vendorIdx := t.EnsureColumn(sheet.ColVendor)
	for _, rec := range records {
		if rec.SuggestedVendor == "" {
			continue
		}
		t.SetCell(rec.RowIndex, vendorIdx, rec.SuggestedVendor)
	}
}
