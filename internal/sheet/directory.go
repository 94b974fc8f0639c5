// Package sheet reads and writes the application-directory workbooks. The
// whole table is the unit of transaction: sheets are read wholesale into
// memory, transformed, and written wholesale, preserving unknown columns and
// row order.
package sheet

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/appdir-cli/internal/model"
)

// Directory sheet column headers.
const (
	ColName                = "Name"
	ColDescription         = "Description"
	ColOfficialURL         = "Official URL"
	ColVendor              = "Vendor"
	ColAIPotential         = "lxAiPotential"
	ColAIRisk              = "lxAiRisk"
	ColAIUsage             = "lxAiUsage"
	ColAIType              = "lxAiType"
	ColTaxonomyDescription = "lxAiTaxonomyDescription"
)

// Table is one sheet held in memory: a header row plus data rows as strings.
// Columns the tool does not know about are carried through untouched.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the index of the named header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" when the row is ragged.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// SetCell writes a value at (row, col), padding ragged rows as needed.
func (t *Table) SetCell(row, col int, v string) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return
	}
	for len(t.Rows[row]) <= col {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][col] = v
}

// InsertColumn inserts a header and per-row values at idx. Values beyond
// len(values) are left empty.
func (t *Table) InsertColumn(idx int, header string, values []string) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.Headers) {
		idx = len(t.Headers)
	}
	t.Headers = append(t.Headers[:idx], append([]string{header}, t.Headers[idx:]...)...)
	for i := range t.Rows {
		for len(t.Rows[i]) < idx {
			t.Rows[i] = append(t.Rows[i], "")
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i][:idx], append([]string{v}, t.Rows[i][idx:]...)...)
	}
}

// RemoveColumn drops the column at idx from the header and every row.
func (t *Table) RemoveColumn(idx int) {
	if idx < 0 || idx >= len(t.Headers) {
		return
	}
	t.Headers = append(t.Headers[:idx], t.Headers[idx+1:]...)
	for i := range t.Rows {
		if idx < len(t.Rows[i]) {
			t.Rows[i] = append(t.Rows[i][:idx], t.Rows[i][idx+1:]...)
		}
	}
}

// EnsureColumn returns the index of the named column, appending it when
// missing.
func (t *Table) EnsureColumn(name string) int {
	if idx := t.ColumnIndex(name); idx >= 0 {
		return idx
	}
	t.Headers = append(t.Headers, name)
	return len(t.Headers) - 1
}

// ReadTable reads the named sheet of an XLSX workbook. The first row is the
// header; everything after is data.
func ReadTable(path, sheetName string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sheet: open %s", path)
	}
	s, ok := f.Sheet[sheetName]
	if !ok {
		return nil, eris.Errorf("sheet: sheet %q not found in %s", sheetName, path)
	}

	t := &Table{}
	for i, row := range s.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			t.Headers = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	if t.Headers == nil {
		return nil, eris.Errorf("sheet: sheet %q in %s has no header row", sheetName, path)
	}
	return t, nil
}

// WriteTable writes the table as the sole sheet of a new workbook.
func WriteTable(path, sheetName string, t *Table) error {
	f := xlsx.NewFile()
	s, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrapf(err, "sheet: add sheet %q", sheetName)
	}

	header := s.AddRow()
	for _, h := range t.Headers {
		header.AddCell().SetString(h)
	}
	for _, row := range t.Rows {
		r := s.AddRow()
		for _, v := range row {
			r.AddCell().SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "sheet: save %s", path)
	}
	return nil
}

// DirectoryRows projects the known directory columns out of a raw table.
// Missing columns yield zero values; unknown enum text is carried as-is
// (validation happens elsewhere).
func DirectoryRows(t *Table) []model.DirectoryRow {
	name := t.ColumnIndex(ColName)
	desc := t.ColumnIndex(ColDescription)
	u := t.ColumnIndex(ColOfficialURL)
	vendor := t.ColumnIndex(ColVendor)
	pot := t.ColumnIndex(ColAIPotential)
	risk := t.ColumnIndex(ColAIRisk)
	usage := t.ColumnIndex(ColAIUsage)
	typ := t.ColumnIndex(ColAIType)
	tax := t.ColumnIndex(ColTaxonomyDescription)

	rows := make([]model.DirectoryRow, len(t.Rows))
	for i := range t.Rows {
		rows[i] = model.DirectoryRow{
			Name:                t.Cell(i, name),
			Description:         t.Cell(i, desc),
			OfficialURL:         t.Cell(i, u),
			Vendor:              t.Cell(i, vendor),
			AIPotential:         model.AIPotential(t.Cell(i, pot)),
			AIRisk:              model.AIRisk(t.Cell(i, risk)),
			AIUsage:             model.AIUsage(t.Cell(i, usage)),
			AIType:              model.AIType(t.Cell(i, typ)),
			TaxonomyDescription: t.Cell(i, tax),
		}
	}
	return rows
}
