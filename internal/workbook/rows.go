package workbook

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"fichahub/pkg/models"
	"fichahub/pkg/textutil"
)

// canonicalHeader turns a header cell into its canonical column key:
// trimmed, lowercased, accents stripped, inner whitespace collapsed to
// underscores. "Área Principal" and "area_principal" both end up as
// "area_principal".
func canonicalHeader(s string) string {
	return strings.Join(strings.Fields(textutil.Fold(s)), "_")
}

// SheetRows extracts one named sheet as raw rows. The first row is the
// header row; blank cells are left out of the map entirely. A missing
// sheet is an error (the load boundary logs it and serves empty).
func SheetRows(wb *spreadsheet.Workbook, name string) ([]models.RawRow, error) {
	sheet, ok := findSheet(wb, name)
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", name)
	}

	rows := sheet.Rows()
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make(map[int]string)
	for _, cell := range rows[0].Cells() {
		idx, ok := cellColumn(cell)
		if !ok {
			continue
		}
		if h := canonicalHeader(cell.GetFormattedValue()); h != "" {
			headers[idx] = h
		}
	}

	out := make([]models.RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := models.RawRow{}
		for _, cell := range row.Cells() {
			idx, ok := cellColumn(cell)
			if !ok {
				continue
			}
			header, ok := headers[idx]
			if !ok {
				continue
			}
			value := strings.TrimSpace(cell.GetFormattedValue())
			if value == "" {
				continue
			}
			raw[header] = value
		}
		if len(raw) > 0 {
			out = append(out, raw)
		}
	}
	return out, nil
}

func findSheet(wb *spreadsheet.Workbook, name string) (spreadsheet.Sheet, bool) {
	for _, sheet := range wb.Sheets() {
		if strings.EqualFold(strings.TrimSpace(sheet.Name()), strings.TrimSpace(name)) {
			return sheet, true
		}
	}
	return spreadsheet.Sheet{}, false
}

func cellColumn(cell spreadsheet.Cell) (int, bool) {
	col, err := cell.Column()
	if err != nil {
		return 0, false
	}
	return int(reference.ColumnToIndex(col)), true
}
