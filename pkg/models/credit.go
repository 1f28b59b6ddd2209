package models

// GeneralCredit is the normalized form of a "Geral" sheet row: one
// attribution line that applies to a whole collection rather than a
// single discipline. Rows map 1:1, no grouping.
type GeneralCredit struct {
	Year    string `json:"year"`
	Volume  int    `json:"volume"`
	Segment string `json:"segment"`
	Series  string `json:"series,omitempty"`
	Area    string `json:"area"`
	Role    string `json:"role"`
	Credits string `json:"credits"`
}

// RoleKind is the closed set of credit roles a discipline card knows
// how to display. Labels that match none of these survive verbatim in
// ExtraField.
type RoleKind string

const (
	RoleBook        RoleKind = "autoria-livro"
	RoleGuide       RoleKind = "autoria-guia"
	RoleAudiovisual RoleKind = "autoria-audiovisual"
	RoleDigital     RoleKind = "autoria-digital"
	RoleCapitulo3   RoleKind = "capitulo-3"
	RoleCapitulo4   RoleKind = "capitulo-4"
	RoleCapitulo5   RoleKind = "capitulo-5"
	RoleCapitulo6   RoleKind = "capitulo-6"
	RoleCapitulo7   RoleKind = "capitulo-7"
	RoleCapitulo8   RoleKind = "capitulo-8"
	RoleImageCredit RoleKind = "creditos-gerais"
)

// ExtraField keeps an unrecognized role label and its credit text.
// This is the forward-compatibility escape hatch: new spreadsheet
// columns show up here without a code change.
type ExtraField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DisciplineCredit is the normalized per-discipline record. There is
// exactly one per (year, volume token, segment, series, discipline)
// key; rows sharing the key merge additively into Roles/Extras.
type DisciplineCredit struct {
	Year       string              `json:"year"`
	Volume     int                 `json:"volume"`
	Segment    string              `json:"segment"`
	Series     string              `json:"series,omitempty"`
	Area       string              `json:"area"`
	Discipline string              `json:"discipline"`
	IconSlug   string              `json:"icon_slug"`
	Roles      map[RoleKind]string `json:"roles"`
	Extras     []ExtraField        `json:"extras,omitempty"`
}

// SetExtra stores an unrecognized role label, overwriting a previous
// value under the same label while keeping first-sight order.
func (d *DisciplineCredit) SetExtra(label, value string) {
	for i := range d.Extras {
		if d.Extras[i].Label == label {
			d.Extras[i].Value = value
			return
		}
	}
	d.Extras = append(d.Extras, ExtraField{Label: label, Value: value})
}

// SoundMusicKey addresses one sound/music credit line. Series may be
// empty; lookups fall back from the series-qualified key to the
// series-less one.
type SoundMusicKey struct {
	Year       string
	Volume     int
	SegmentKey string
	Series     string
}

// SoundMusicIndex maps composite keys to a single credit-block string.
type SoundMusicIndex map[SoundMusicKey]string

// Lookup resolves the sound/music line for a selection, trying the
// series-qualified key first.
func (idx SoundMusicIndex) Lookup(year string, volume int, segmentKey, series string) string {
	if v, ok := idx[SoundMusicKey{Year: year, Volume: volume, SegmentKey: segmentKey, Series: series}]; ok {
		return v
	}
	if series != "" {
		if v, ok := idx[SoundMusicKey{Year: year, Volume: volume, SegmentKey: segmentKey}]; ok {
			return v
		}
	}
	return ""
}

// Dataset is everything one workbook load produces. It is replaced
// wholesale on reload and never mutated afterwards.
type Dataset struct {
	General     []GeneralCredit
	Disciplines []DisciplineCredit
	SoundMusic  SoundMusicIndex
	// Rows keeps the raw row set; the filter-option calculators work
	// over it rather than the normalized collections.
	Rows []RawRow
}

// EmptyDataset returns a usable zero dataset (after a failed load the
// server keeps serving, just with nothing in it).
func EmptyDataset() *Dataset {
	return &Dataset{SoundMusic: SoundMusicIndex{}}
}

// Selection is the live (year, segment, series, volume) cursor. The
// server never stores one; each request's cursor is reconciled against
// the data and sent back settled.
type Selection struct {
	Year    string `json:"year"`
	Segment string `json:"segment"`
	Series  string `json:"series,omitempty"`
	Volume  int    `json:"volume"`
}
