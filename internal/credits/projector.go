package credits

import (
	"sort"
	"strings"
	"unicode"

	"fichahub/pkg/models"
	"fichahub/pkg/textutil"
)

// Display labels for the known roles, in card order.
var roleLabels = map[models.RoleKind]string{
	models.RoleBook:        "Livro didático",
	models.RoleGuide:       "Guia de Estudos",
	models.RoleAudiovisual: "Audiovisual",
	models.RoleDigital:     "Conteúdo digital",
	models.RoleCapitulo3:   "Capítulo 3",
	models.RoleCapitulo4:   "Capítulo 4",
	models.RoleCapitulo5:   "Capítulo 5",
	models.RoleCapitulo6:   "Capítulo 6",
	models.RoleCapitulo7:   "Capítulo 7",
	models.RoleCapitulo8:   "Capítulo 8",
	models.RoleImageCredit: "Créditos Gerais",
}

var authorshipOrder = []models.RoleKind{
	models.RoleBook,
	models.RoleGuide,
	models.RoleAudiovisual,
	models.RoleDigital,
}

var imageCreditOrder = []models.RoleKind{
	models.RoleCapitulo3,
	models.RoleCapitulo4,
	models.RoleCapitulo5,
	models.RoleCapitulo6,
	models.RoleCapitulo7,
	models.RoleCapitulo8,
	models.RoleImageCredit,
}

// Areas pinned ahead of the alphabetical remainder in the general
// section (folded names, pinned order).
var areaPriority = map[string]int{
	"geral":             0,
	"nucleo de arte":    1,
	"nucleo pedagogico": 2,
}

const earlyChildhoodTitle = "Conversas Pedagógicas"

// RoleLine is one labelled credit line on a discipline card.
type RoleLine struct {
	Kind  models.RoleKind `json:"kind"`
	Label string          `json:"label"`
	Value string          `json:"value"`
}

// ExtraLine is an unrecognized role rendered verbatim.
type ExtraLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DisciplineCard is one discipline's view-ready credit card.
type DisciplineCard struct {
	Discipline   string      `json:"discipline"`
	Area         string      `json:"area"`
	IconSlug     string      `json:"icon_slug"`
	IconURL      string      `json:"icon_url,omitempty"`
	Authorship   []RoleLine  `json:"authorship"`
	ImageCredits []RoleLine  `json:"image_credits"`
	TextExtras   []ExtraLine `json:"text_extras,omitempty"`
	ImageExtras  []ExtraLine `json:"image_extras,omitempty"`
}

// GeneralLine is one general-credit row inside an area group.
type GeneralLine struct {
	Role    string `json:"role"`
	Credits string `json:"credits"`
}

// AreaGroup is the general-credit rows bucketed under one area label.
type AreaGroup struct {
	Area  string        `json:"area"`
	Lines []GeneralLine `json:"lines"`
}

// View is the exact set of records to display for one selection.
type View struct {
	Selection     models.Selection `json:"selection"`
	Title         string           `json:"title,omitempty"`
	GeneralGroups []AreaGroup      `json:"general_groups"`
	Disciplines   []DisciplineCard `json:"disciplines"`
	SoundMusic    string           `json:"sound_music,omitempty"`
	Empty         bool             `json:"empty"`
}

// Project filters the normalized dataset down to what the current
// selection displays. Pure; the dataset is never touched.
func Project(ds *models.Dataset, sel models.Selection, assetBase string) View {
	view := View{Selection: sel}

	early := textutil.IsEarlyChildhood(sel.Segment)

	for _, rec := range ds.Disciplines {
		if !disciplineMatches(rec, sel) {
			continue
		}
		if early && !strings.Contains(textutil.Fold(rec.Discipline), "conversas") {
			continue
		}
		view.Disciplines = append(view.Disciplines, buildCard(rec, assetBase))
	}

	if early {
		// Early childhood shows a single forced-title list; the
		// general sections and default grid are suppressed.
		view.Title = earlyChildhoodTitle
	} else {
		view.GeneralGroups = generalGroups(ds.General, sel)
	}

	sound := ds.SoundMusic.Lookup(sel.Year, sel.Volume, textutil.SegmentKey(sel.Segment), textutil.Fold(sel.Series))
	view.Empty = len(view.GeneralGroups) == 0 && len(view.Disciplines) == 0 && sound == ""
	if sound != "" && (len(view.GeneralGroups) > 0 || len(view.Disciplines) > 0) {
		view.SoundMusic = sound
	}

	return view
}

// disciplineMatches applies the tolerant field match: a record with a
// blank year/volume/segment/series matches any selection.
func disciplineMatches(rec models.DisciplineCredit, sel models.Selection) bool {
	if rec.Year != "" && rec.Year != sel.Year {
		return false
	}
	if rec.Volume != 0 && rec.Volume != sel.Volume {
		return false
	}
	if rec.Segment != "" && !textutil.SegmentsMatch(rec.Segment, sel.Segment) {
		return false
	}
	if rec.Series != "" && sel.Series != "" && rec.Series != sel.Series {
		return false
	}
	return true
}

func generalMatches(g models.GeneralCredit, sel models.Selection) bool {
	if g.Year != "" && g.Year != sel.Year {
		return false
	}
	if g.Volume != 0 && g.Volume != sel.Volume {
		return false
	}
	if g.Segment != "" && !textutil.SegmentsMatch(g.Segment, sel.Segment) {
		return false
	}
	if g.Series != "" && sel.Series != "" && g.Series != sel.Series {
		return false
	}
	return true
}

// isSoundMusicRole reports whether a general row belongs to the
// separate sound/music section instead of the area groups.
func isSoundMusicRole(label string) bool {
	f := textutil.Fold(label)
	return strings.Contains(f, "som") || strings.Contains(f, "musica")
}

func generalGroups(general []models.GeneralCredit, sel models.Selection) []AreaGroup {
	byArea := make(map[string]*AreaGroup)
	var areas []string
	for _, g := range general {
		if !generalMatches(g, sel) || isSoundMusicRole(g.Role) {
			continue
		}
		grp, ok := byArea[g.Area]
		if !ok {
			grp = &AreaGroup{Area: g.Area}
			byArea[g.Area] = grp
			areas = append(areas, g.Area)
		}
		grp.Lines = append(grp.Lines, GeneralLine{Role: g.Role, Credits: g.Credits})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		pi, pj := areaRank(areas[i]), areaRank(areas[j])
		if pi != pj {
			return pi < pj
		}
		return textutil.Fold(areas[i]) < textutil.Fold(areas[j])
	})

	out := make([]AreaGroup, 0, len(areas))
	for _, a := range areas {
		out = append(out, *byArea[a])
	}
	return out
}

func areaRank(area string) int {
	if p, ok := areaPriority[textutil.Fold(area)]; ok {
		return p
	}
	return len(areaPriority)
}

func buildCard(rec models.DisciplineCredit, assetBase string) DisciplineCard {
	card := DisciplineCard{
		Discipline: rec.Discipline,
		Area:       rec.Area,
		IconSlug:   rec.IconSlug,
		IconURL:    iconURL(assetBase, rec.IconSlug),
	}
	for _, kind := range authorshipOrder {
		if v := rec.Roles[kind]; v != "" {
			card.Authorship = append(card.Authorship, RoleLine{Kind: kind, Label: roleLabels[kind], Value: v})
		}
	}
	for _, kind := range imageCreditOrder {
		if v := rec.Roles[kind]; v != "" {
			card.ImageCredits = append(card.ImageCredits, RoleLine{Kind: kind, Label: roleLabels[kind], Value: v})
		}
	}
	for _, extra := range rec.Extras {
		line := ExtraLine{Label: extra.Label, Value: extra.Value}
		if isImageLikeLabel(extra.Label) {
			card.ImageExtras = append(card.ImageExtras, line)
		} else {
			card.TextExtras = append(card.TextExtras, line)
		}
	}
	return card
}

// isImageLikeLabel decides which sub-group an unrecognized label is
// rendered in: chapter-ish or credits-ish labels, or anything carrying
// a volume-code token ("V2"), read as image credits.
func isImageLikeLabel(label string) bool {
	f := textutil.Fold(label)
	if strings.Contains(f, "capitulo") || strings.Contains(f, "creditos") {
		return true
	}
	for _, tok := range strings.Fields(f) {
		r := []rune(tok)
		if len(r) >= 2 && unicode.IsLetter(r[0]) && textutil.ParseVolumeToken(tok) > 0 {
			return true
		}
	}
	return false
}

func iconURL(assetBase, slug string) string {
	if assetBase == "" || slug == "" {
		return ""
	}
	return strings.TrimRight(assetBase, "/") + "/icons/" + slug + ".svg"
}
