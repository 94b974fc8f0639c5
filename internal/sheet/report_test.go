package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/appdir-cli/internal/model"
)

func sampleRecords() []model.ValidationRecord {
	return []model.ValidationRecord{
		{
			RowIndex:      0,
			AppName:       "Acme",
			OfficialURL:   "https://acme.com",
			CurrentVendor: "Acme",
			Indicators: model.BrandIndicators{
				SiteName: "Acme",
				Title:    "Acme - Home",
				H1:       "Welcome to Acme",
			},
			BestBrand:       "Acme",
			MatchStatus:     model.MatchExact,
			Similarity:      1.0,
			Confidence:      model.ConfidenceHigh,
			SuggestedVendor: "Acme",
			FetchStatus:     "ok",
		},
		{
			RowIndex:        1,
			AppName:         "Globex",
			OfficialURL:     "https://globex.invalid",
			CurrentVendor:   "Globex",
			BestBrand:       "Globex",
			MatchStatus:     model.MatchExact,
			Similarity:      1.0,
			Confidence:      model.ConfidenceHigh,
			SuggestedVendor: "Globex",
			FetchStatus:     "request_error: no such host",
		},
	}
}

func TestWriteReadReportRoundTrip(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	sum := model.Summarize(records)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteReport(path, "Validation Results", "Summary", records, sum))

	got, err := ReadReport(path, "Validation Results")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, records[0].AppName, got[0].AppName)
	assert.Equal(t, records[0].Indicators, got[0].Indicators)
	assert.Equal(t, records[0].MatchStatus, got[0].MatchStatus)
	assert.Equal(t, records[0].Confidence, got[0].Confidence)
	assert.InDelta(t, records[0].Similarity, got[0].Similarity, 0.005)

	// Row index is positional.
	assert.Equal(t, 0, got[0].RowIndex)
	assert.Equal(t, 1, got[1].RowIndex)
	assert.Equal(t, "request_error: no such host", got[1].FetchStatus)
}

func TestWriteReportSummarySheet(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	sum := model.Summarize(records)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteReport(path, "Validation Results", "Summary", records, sum))

	summary, err := ReadTable(path, "Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Count"}, summary.Headers)

	counts := make(map[string]string)
	for i := range summary.Rows {
		counts[summary.Cell(i, 0)] = summary.Cell(i, 1)
	}
	assert.Equal(t, "2", counts["Total"])
	assert.Equal(t, "2", counts["Exact"])
	assert.Equal(t, "1", counts["Fetch Failed"])
	assert.Equal(t, "0", counts["Mismatch"])
}

func TestReadReportMissingColumn(t *testing.T) {
	t.Parallel()

	path := writeTestWorkbook(t, "Validation Results", [][]string{
		{"App Name", "Official URL"},
		{"Acme", "https://acme.com"},
	})

	_, err := ReadReport(path, "Validation Results")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}
