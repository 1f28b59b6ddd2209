package models

// RawRow is one spreadsheet row, keyed by canonical header name.
// It only exists between parsing and classification.
//
// The workbook reader canonicalizes headers (trim, lowercase, strip
// accents, spaces -> underscores), so "área_principal" and
// "area_principal" land on the same key. Blank cells are absent, not
// empty strings.
type RawRow map[string]string

// Canonical column keys produced by the workbook reader.
const (
	ColYear          = "ano"
	ColVolume        = "volume"
	ColSegment       = "segmento"
	ColSeries        = "serie"
	ColArea          = "area_principal"
	ColDiscipline    = "disciplina"
	ColRole          = "funcao"
	ColCredits       = "creditos"
	ColCreditsLegacy = "bloco_de_creditos"
)

// Get returns the trimmed cell value for a canonical column, or "".
func (r RawRow) Get(col string) string {
	return r[col]
}

// Credits returns the credit text, preferring the current "creditos"
// column over the legacy "bloco_de_creditos" one.
func (r RawRow) Credits() string {
	if v := r[ColCredits]; v != "" {
		return v
	}
	return r[ColCreditsLegacy]
}
