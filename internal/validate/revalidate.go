package validate

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/appdir-cli/internal/model"
)

// candidatePaths are the pages most likely to carry usable brand markup when
// the homepage itself will not load.
var candidatePaths = []string{
	"/",
	"/about",
	"/about-us",
	"/aboutus",
	"/company",
	"/en/about",
	"/en/company",
	"/who-we-are",
	"/about/company",
	"/about/company/overview",
}

// CandidateURLs builds the ordered retry list for a fetch-failed URL: both
// schemes crossed with the original host, its www-toggled variant, the bare
// registrable domain, and www.<registrable>, each crossed with the candidate
// paths. Duplicates are removed preserving order. Unusable input yields nil.
func CandidateURLs(rawURL string) []string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}

	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	schemes := []string{scheme}
	if scheme == "https" {
		schemes = append(schemes, "http")
	} else {
		schemes = append(schemes, "https")
	}

	// Last two labels only. Ignores public-suffix-list nuances on purpose:
	// for retry candidates a wrong guess just costs one failed fetch.
	registrable := host
	if labels := strings.Split(host, "."); len(labels) >= 2 {
		registrable = strings.Join(labels[len(labels)-2:], ".")
	}

	hosts := []string{host}
	if stripped, ok := strings.CutPrefix(host, "www."); ok {
		hosts = append(hosts, stripped)
	} else {
		hosts = append(hosts, "www."+host)
	}
	hosts = append(hosts, registrable, "www."+registrable)

	seen := make(map[string]bool)
	var candidates []string
	for _, s := range schemes {
		for _, h := range hosts {
			for _, p := range candidatePaths {
				c := s + "://" + h + p
				if !seen[c] {
					seen[c] = true
					candidates = append(candidates, c)
				}
			}
		}
	}
	return candidates
}

// RevalidateOptions tunes a revalidation run.
type RevalidateOptions struct {
	// Delay between successive candidate fetches.
	Delay time.Duration

	// ProgressEvery controls how often progress is logged.
	ProgressEvery int
}

func (o RevalidateOptions) withDefaults() RevalidateOptions {
	if o.Delay == 0 {
		o.Delay = 200 * time.Millisecond
	}
	if o.ProgressEvery == 0 {
		o.ProgressEvery = 10
	}
	return o
}

// RevalidateFailed retries every fetch-failed record from a prior report
// against its candidate URLs and merges improvements back by row index. A
// row whose candidates all fail keeps its original record verbatim: this
// pass only ever improves a row's standing. The returned summary is
// re-derived over the merged set.
func RevalidateFailed(ctx context.Context, records []model.ValidationRecord, src IndicatorSource, opts RevalidateOptions) ([]model.ValidationRecord, model.Summary, error) {
	opts = opts.withDefaults()
	limiter := rate.NewLimiter(rate.Every(opts.Delay), 1)

	merged := make([]model.ValidationRecord, len(records))
	copy(merged, records)

	var failed []int
	for i, rec := range records {
		if !model.FetchSucceeded(rec.FetchStatus) {
			failed = append(failed, i)
		}
	}

	zap.L().Info("revalidate: starting",
		zap.Int("failed_rows", len(failed)),
		zap.Int("total_rows", len(records)),
	)

	for n, i := range failed {
		rec := records[i]

		for _, candidate := range CandidateURLs(rec.OfficialURL) {
			if err := limiter.Wait(ctx); err != nil {
				return merged, model.Summarize(merged), eris.Wrap(err, "revalidate: wait for rate limiter")
			}

			ind, status := src.BrandIndicators(ctx, candidate)
			if !model.FetchSucceeded(status) || ind.Empty() {
				continue
			}

			improved := buildRecord(rec.RowIndex, rec.AppName, rec.OfficialURL, rec.CurrentVendor, ind, "ok:"+candidate)
			merged[i] = improved
			zap.L().Debug("revalidate: recovered row",
				zap.Int("row", rec.RowIndex),
				zap.String("app", rec.AppName),
				zap.String("candidate", candidate),
			)
			break
		}

		if (n+1)%opts.ProgressEvery == 0 || n+1 == len(failed) {
			zap.L().Info("revalidate: progress",
				zap.Int("revalidated", n+1),
				zap.Int("failed_total", len(failed)),
			)
		}
	}

	sum := model.Summarize(merged)
	zap.L().Info("revalidate: complete",
		zap.Int("total", sum.Total),
		zap.Int("fetch_failed", sum.FetchFailed),
	)
	return merged, sum, nil
}
