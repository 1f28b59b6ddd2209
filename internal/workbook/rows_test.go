package workbook

import (
	"testing"

	"github.com/unidoc/unioffice/spreadsheet"

	"fichahub/pkg/models"
)

func buildSheet(t *testing.T, wb *spreadsheet.Workbook, name string, rows [][]string) {
	t.Helper()
	sheet := wb.AddSheet()
	sheet.SetName(name)
	for _, cells := range rows {
		r := sheet.AddRow()
		for _, v := range cells {
			c := r.AddCell()
			if v != "" {
				c.SetString(v)
			}
		}
	}
}

func TestSheetRows_HeaderVariants(t *testing.T) {
	wb := spreadsheet.New()
	buildSheet(t, wb, "Autorias", [][]string{
		// Accented headers in one sheet, unaccented in the wild: both
		// must land on the same canonical keys.
		{"ANO", "Volume", "Segmento", "Série", "Área Principal", "Disciplina", "Função", "Créditos"},
		{"2025", "V1", "Ensino Médio", "", "Ciências da Natureza", "BIOLOGIA", "Autoria - Livro", "Author A"},
	})

	rows, err := SheetRows(wb, "autorias") // sheet names match case-insensitively
	if err != nil {
		t.Fatalf("SheetRows error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows=%d, want 1", len(rows))
	}

	r := rows[0]
	if r.Get(models.ColYear) != "2025" {
		t.Fatalf("ano=%q", r.Get(models.ColYear))
	}
	if r.Get(models.ColArea) != "Ciências da Natureza" {
		t.Fatalf("area_principal=%q", r.Get(models.ColArea))
	}
	if r.Get(models.ColSeries) != "" {
		t.Fatalf("serie=%q, blank cell must stay absent", r.Get(models.ColSeries))
	}
	if r.Get(models.ColRole) != "Autoria - Livro" {
		t.Fatalf("funcao=%q", r.Get(models.ColRole))
	}
}

func TestSheetRows_LegacyCreditsColumn(t *testing.T) {
	wb := spreadsheet.New()
	buildSheet(t, wb, "Geral", [][]string{
		{"Ano", "Volume", "Segmento", "Área Principal", "Função", "Bloco de Créditos"},
		{"2025", "2", "Ensino Médio", "Geral", "Edição", "Legacy Block"},
	})

	rows, err := SheetRows(wb, "Geral")
	if err != nil {
		t.Fatalf("SheetRows error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows=%d, want 1", len(rows))
	}
	if rows[0].Credits() != "Legacy Block" {
		t.Fatalf("credits=%q, want legacy column fallback", rows[0].Credits())
	}
}

func TestSheetRows_MissingSheet(t *testing.T) {
	wb := spreadsheet.New()
	buildSheet(t, wb, "Geral", [][]string{{"Ano"}})

	if _, err := SheetRows(wb, "Autorias"); err == nil {
		t.Fatalf("expected error for missing sheet")
	}
}

func TestCanonicalHeader(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Área Principal", "area_principal"},
		{"area_principal", "area_principal"},
		{"  Bloco  de  Créditos ", "bloco_de_creditos"},
		{"FUNÇÃO", "funcao"},
	}
	for _, tc := range cases {
		if got := canonicalHeader(tc.in); got != tc.want {
			t.Fatalf("canonicalHeader(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
