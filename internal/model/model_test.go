package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, AIPotentialVeryHigh.Valid())
	assert.False(t, AIPotential("colossal").Valid())
	assert.False(t, AIPotential("").Valid())

	assert.True(t, AIRiskUnacceptable.Valid())
	assert.False(t, AIRisk("severe").Valid())

	assert.True(t, AIUsageAIEnabled.Valid())
	assert.False(t, AIUsage("maybe").Valid())

	assert.True(t, AITypeLLM.Valid())
	assert.True(t, AITypeOther.Valid())
	assert.False(t, AIType("other").Valid()) // enum value is capitalized
}

func TestNoURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"sentinel", "N/A", true},
		{"sentinel lowercase", "n/a", true},
		{"sentinel padded", "  N/A ", true},
		{"real url", "https://example.com", false},
		{"bare host", "example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := DirectoryRow{OfficialURL: tt.url}
			assert.Equal(t, tt.want, r.NoURL())
		})
	}
}

func TestConfidenceFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ConfidenceHigh, ConfidenceFor(MatchExact))
	assert.Equal(t, ConfidenceHigh, ConfidenceFor(MatchSubstring))
	assert.Equal(t, ConfidenceMedium, ConfidenceFor(MatchFuzzy))
	assert.Equal(t, ConfidenceLow, ConfidenceFor(MatchMismatch))
	assert.Equal(t, ConfidenceLow, ConfidenceFor(MatchUnknownBrand))
}

func TestFetchSucceeded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   bool
	}{
		{"ok", true},
		{"ok-browser", true},
		{"ok:https://example.com/about", true},
		{"no_url", false},
		{"request_error: connection refused", false},
		{"parse_error: unexpected EOF", false},
		{"browser_status: 403", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FetchSucceeded(tt.status))
		})
	}
}

func TestBrandIndicatorsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, BrandIndicators{}.Empty())
	assert.False(t, BrandIndicators{Title: "Acme"}.Empty())
	assert.False(t, BrandIndicators{H1: "Acme"}.Empty())
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	records := []ValidationRecord{
		{MatchStatus: MatchExact, FetchStatus: "ok"},
		{MatchStatus: MatchExact, FetchStatus: "ok-browser"},
		{MatchStatus: MatchSubstring, FetchStatus: "ok"},
		{MatchStatus: MatchFuzzy, FetchStatus: "ok:https://a.com/about"},
		{MatchStatus: MatchMismatch, FetchStatus: "ok"},
		{MatchStatus: MatchUnknownBrand, FetchStatus: "request_error: timeout"},
		{MatchStatus: MatchUnknownBrand, FetchStatus: "no_url"},
	}

	s := Summarize(records)
	assert.Equal(t, 7, s.Total)
	assert.Equal(t, 2, s.Exact)
	assert.Equal(t, 1, s.Substring)
	assert.Equal(t, 1, s.Fuzzy)
	assert.Equal(t, 1, s.Mismatch)
	assert.Equal(t, 2, s.UnknownBrand)
	// Both the network failure and the missing-URL row count as fetch
	// failures; no usable signal was collected for either.
	assert.Equal(t, 2, s.FetchFailed)
}
