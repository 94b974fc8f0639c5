package sheet

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/appdir-cli/internal/model"
)

// Validation report column headers, in sheet order. Report rows are written
// in directory order, so a record's position doubles as its row key.
var reportHeaders = []string{
	"App Name",
	"Official URL",
	"Vendor (Current)",
	"Brand og:site_name",
	"Brand <title>",
	"Brand <h1>",
	"Best Brand",
	"Match Status",
	"Similarity",
	"Confidence",
	"Suggested Vendor",
	"Fetch Status",
}

// WriteReport writes the audit workbook: a results sheet with one row per
// validated directory row, and a summary sheet of aggregate counts.
func WriteReport(path, resultsSheet, summarySheet string, records []model.ValidationRecord, sum model.Summary) error {
	f := xlsx.NewFile()

	results, err := f.AddSheet(resultsSheet)
	if err != nil {
		return eris.Wrapf(err, "sheet: add sheet %q", resultsSheet)
	}
	header := results.AddRow()
	for _, h := range reportHeaders {
		header.AddCell().SetString(h)
	}
	for _, rec := range records {
		row := results.AddRow()
		for _, v := range []string{
			rec.AppName,
			rec.OfficialURL,
			rec.CurrentVendor,
			rec.Indicators.SiteName,
			rec.Indicators.Title,
			rec.Indicators.H1,
			rec.BestBrand,
			string(rec.MatchStatus),
			fmt.Sprintf("%.2f", rec.Similarity),
			string(rec.Confidence),
			rec.SuggestedVendor,
			rec.FetchStatus,
		} {
			row.AddCell().SetString(v)
		}
	}

	summary, err := f.AddSheet(summarySheet)
	if err != nil {
		return eris.Wrapf(err, "sheet: add sheet %q", summarySheet)
	}
	sh := summary.AddRow()
	sh.AddCell().SetString("Metric")
	sh.AddCell().SetString("Count")
	for _, m := range []struct {
		name  string
		count int
	}{
		{"Total", sum.Total},
		{"Exact", sum.Exact},
		{"Substring", sum.Substring},
		{"Fuzzy", sum.Fuzzy},
		{"Mismatch", sum.Mismatch},
		{"Unknown Brand", sum.UnknownBrand},
		{"Fetch Failed", sum.FetchFailed},
	} {
		row := summary.AddRow()
		row.AddCell().SetString(m.name)
		row.AddCell().SetString(strconv.Itoa(m.count))
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "sheet: save %s", path)
	}
	return nil
}

// ReadReport reads a prior validation report back into records. RowIndex is
// assigned from sheet position, which mirrors directory order.
func ReadReport(path, resultsSheet string) ([]model.ValidationRecord, error) {
	t, err := ReadTable(path, resultsSheet)
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(reportHeaders))
	for _, h := range reportHeaders {
		idx := t.ColumnIndex(h)
		if idx < 0 {
			return nil, eris.Errorf("sheet: report %s missing column %q", path, h)
		}
		col[h] = idx
	}

	records := make([]model.ValidationRecord, len(t.Rows))
	for i := range t.Rows {
		sim, _ := strconv.ParseFloat(t.Cell(i, col["Similarity"]), 64)
		records[i] = model.ValidationRecord{
			RowIndex:      i,
			AppName:       t.Cell(i, col["App Name"]),
			OfficialURL:   t.Cell(i, col["Official URL"]),
			CurrentVendor: t.Cell(i, col["Vendor (Current)"]),
			Indicators: model.BrandIndicators{
				SiteName: t.Cell(i, col["Brand og:site_name"]),
				Title:    t.Cell(i, col["Brand <title>"]),
				H1:       t.Cell(i, col["Brand <h1>"]),
			},
			BestBrand:       t.Cell(i, col["Best Brand"]),
			MatchStatus:     model.MatchStatus(t.Cell(i, col["Match Status"])),
			Similarity:      sim,
			Confidence:      model.Confidence(t.Cell(i, col["Confidence"])),
			SuggestedVendor: t.Cell(i, col["Suggested Vendor"]),
			FetchStatus:     t.Cell(i, col["Fetch Status"]),
		}
	}
	return records, nil
}
