package brand

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/sells-group/appdir-cli/internal/model"
)

// FuzzyThreshold is the similarity ratio above which two normalized brand
// strings are treated as the same brand. High enough to reject unrelated
// names, low enough to tolerate minor rendering differences on live pages.
const FuzzyThreshold = 0.86

var (
	nonWordRuns = regexp.MustCompile(`[\W_]+`)

	// Tagline delimiters: a single separator character between spaces, as in
	// "Acme - The Future of Widgets" or "Acme | Home".
	taglineSplit = regexp.MustCompile(`\s[-|–—:•·]\s`)
)

// Normalize lowercases a brand string, collapses runs of non-word characters
// to single spaces, and drops corporate suffix tokens (inc, llc, gmbh, ...).
// Empty input normalizes to "".
func Normalize(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	t = nonWordRuns.ReplaceAllString(t, " ")

	var kept []string
	for _, tok := range strings.Fields(t) {
		if !corporateSuffixTokens[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// Compare classifies the relationship between the directory's current vendor
// and a brand string scraped from the vendor's site. Rules are evaluated in
// order and the first hit wins:
//
//  1. empty brand against a non-empty vendor is unknown_brand
//  2. equal non-empty strings are exact
//  3. either containing the other is substring (live pages routinely decorate
//     brand names, so containment is unambiguous evidence)
//  4. otherwise a similarity ratio decides fuzzy vs mismatch
func Compare(vendor, brandText string) (model.MatchStatus, float64, bool) {
	v := Normalize(vendor)
	b := Normalize(brandText)

	if b == "" && v != "" {
		return model.MatchUnknownBrand, 0.0, false
	}
	if v == b && v != "" {
		return model.MatchExact, 1.0, true
	}
	if v != "" && b != "" && (strings.Contains(b, v) || strings.Contains(v, b)) {
		return model.MatchSubstring, 1.0, true
	}

	var ratio float64
	if v != "" || b != "" {
		ratio = levenshtein.Similarity(v, b, levenshtein.NewParams())
	}
	if ratio >= FuzzyThreshold {
		return model.MatchFuzzy, ratio, true
	}
	return model.MatchMismatch, ratio, false
}

// PickBestBrand chooses the strongest brand string from a page's indicators.
// Each candidate is truncated at its first tagline delimiter, then the first
// one with a usable normalized form (>= 2 chars) wins, in priority order
// site name, title, h1. When no indicator qualifies it falls back to the
// domain heuristic.
func PickBestBrand(ind model.BrandIndicators, rawURL string) string {
	for _, c := range []string{ind.SiteName, ind.Title, ind.H1} {
		c = strings.TrimSpace(taglineSplit.Split(c, 2)[0])
		if len(Normalize(c)) >= 2 {
			return c
		}
	}
	return InferVendor(rawURL)
}
