package model

import "strings"

// MatchStatus is the discrete outcome of comparing two normalized brand
// strings.
type MatchStatus string

const (
	MatchExact        MatchStatus = "exact"
	MatchSubstring    MatchStatus = "substring"
	MatchFuzzy        MatchStatus = "fuzzy"
	MatchMismatch     MatchStatus = "mismatch"
	MatchUnknownBrand MatchStatus = "unknown_brand"
)

// Confidence grades how trustworthy a vendor/brand comparison is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceFor derives the confidence grade from a match status: exact and
// substring matches are unambiguous, fuzzy is tentative, everything else is
// low.
func ConfidenceFor(status MatchStatus) Confidence {
	switch status {
	case MatchExact, MatchSubstring:
		return ConfidenceHigh
	case MatchFuzzy:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Fetch status values. Anything prefixed "ok" counts as a success; failure
// statuses carry a descriptive suffix (e.g. "request_error: ...").
const (
	FetchStatusNoURL = "no_url"
	FetchStatusOK    = "ok"
)

// FetchSucceeded reports whether a fetch status string indicates success.
// Successful statuses are "ok", "ok-<fetcher>" for fallback fetchers, and
// "ok:<url>" for revalidation hits.
func FetchSucceeded(status string) bool {
	return strings.HasPrefix(status, FetchStatusOK)
}

// BrandIndicators holds the brand-naming signals scraped from one page.
// Created per fetch attempt and folded into a ValidationRecord; never
// persisted on its own.
type BrandIndicators struct {
	SiteName string `json:"site_name"` // og:site_name, else application-name
	Title    string `json:"title"`
	H1       string `json:"h1"`
}

// Empty reports whether no indicator carries any text.
func (b BrandIndicators) Empty() bool {
	return b.SiteName == "" && b.Title == "" && b.H1 == ""
}

// ValidationRecord is one row of the audit report. RowIndex keys the record
// back to its directory row; app names are not unique, so merging by name
// would silently collide.
type ValidationRecord struct {
	RowIndex        int             `json:"row_index"`
	AppName         string          `json:"app_name"`
	OfficialURL     string          `json:"official_url"`
	CurrentVendor   string          `json:"current_vendor"`
	Indicators      BrandIndicators `json:"indicators"`
	BestBrand       string          `json:"best_brand"`
	MatchStatus     MatchStatus     `json:"match_status"`
	Similarity      float64         `json:"similarity"`
	Confidence      Confidence      `json:"confidence"`
	SuggestedVendor string          `json:"suggested_vendor"`
	FetchStatus     string          `json:"fetch_status"`
}

// Summary aggregates match-status counts across a validation run.
type Summary struct {
	Total        int `json:"total"`
	Exact        int `json:"exact"`
	Substring    int `json:"substring"`
	Fuzzy        int `json:"fuzzy"`
	Mismatch     int `json:"mismatch"`
	UnknownBrand int `json:"unknown_brand"`
	FetchFailed  int `json:"fetch_failed"`
}

// Add folds one record into the summary.
func (s *Summary) Add(rec ValidationRecord) {
	s.Total++
	switch rec.MatchStatus {
	case MatchExact:
		s.Exact++
	case MatchSubstring:
		s.Substring++
	case MatchFuzzy:
		s.Fuzzy++
	case MatchMismatch:
		s.Mismatch++
	case MatchUnknownBrand:
		s.UnknownBrand++
	}
	// Rows with no URL never produce a usable signal either, so they count
	// toward the fetch-failure total alongside real network failures.
	if !FetchSucceeded(rec.FetchStatus) {
		s.FetchFailed++
	}
}

// Summarize rebuilds a summary from a full record set.
func Summarize(records []ValidationRecord) Summary {
	var s Summary
	for _, rec := range records {
		s.Add(rec)
	}
	return s
}

func trimUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
