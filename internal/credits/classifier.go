package credits

import (
	"strings"

	"fichahub/pkg/models"
	"fichahub/pkg/textutil"
)

// Discipline cell values that mean "this row is not about one
// discipline": the general sheet marker and the all-disciplines marker.
const (
	disciplineAll     = "todas"
	disciplineGeneral = "geral"
)

// roleRules is the prioritized matcher for role labels. First match
// wins, so the more specific patterns come before the catch-alls.
// Matching is fold-based (case and accent insensitive, substring).
var roleRules = []struct {
	substr string
	kind   models.RoleKind
}{
	{"livro", models.RoleBook},
	{"guia", models.RoleGuide},
	{"audiovisual", models.RoleAudiovisual},
	{"digital", models.RoleDigital},
	{"capitulo 3", models.RoleCapitulo3},
	{"capitulo 4", models.RoleCapitulo4},
	{"capitulo 5", models.RoleCapitulo5},
	{"capitulo 6", models.RoleCapitulo6},
	{"capitulo 7", models.RoleCapitulo7},
	{"capitulo 8", models.RoleCapitulo8},
	{"creditos gerais", models.RoleImageCredit},
	{"creditos - imagens", models.RoleImageCredit},
}

// classifyRole maps a human-authored role label onto the closed
// RoleKind set. Unmatched labels are the callers' problem (they go to
// Extras verbatim).
func classifyRole(label string) (models.RoleKind, bool) {
	f := textutil.Fold(label)
	for _, r := range roleRules {
		if strings.Contains(f, r.substr) {
			return r.kind, true
		}
	}
	return "", false
}

type groupKey struct {
	year       string
	volume     string
	segment    string
	series     string
	discipline string
}

// Classify reshapes the concatenated raw rows of both sheets into the
// normalized dataset. It is a pure function of its input: running it
// twice on the same rows yields identical collections.
func Classify(rows []models.RawRow) *models.Dataset {
	ds := &models.Dataset{
		SoundMusic: models.SoundMusicIndex{},
		Rows:       rows,
	}

	byKey := make(map[groupKey]*models.DisciplineCredit)
	var order []groupKey

	for _, row := range rows {
		discipline := row.Get(models.ColDiscipline)
		fold := textutil.Fold(discipline)

		switch {
		case discipline == "":
			// General stream: rows map 1:1, no grouping.
			ds.General = append(ds.General, models.GeneralCredit{
				Year:    row.Get(models.ColYear),
				Volume:  textutil.ParseVolumeToken(row.Get(models.ColVolume)),
				Segment: row.Get(models.ColSegment),
				Series:  row.Get(models.ColSeries),
				Area:    row.Get(models.ColArea),
				Role:    row.Get(models.ColRole),
				Credits: row.Credits(),
			})

		case fold != disciplineAll && fold != disciplineGeneral:
			// Discipline stream: group by key, merge role fields
			// additively. Later rows overwrite only the role they
			// target, never the record.
			key := groupKey{
				year:       strings.ToLower(row.Get(models.ColYear)),
				volume:     strings.ToLower(row.Get(models.ColVolume)),
				segment:    strings.ToLower(row.Get(models.ColSegment)),
				series:     strings.ToLower(row.Get(models.ColSeries)),
				discipline: strings.ToLower(discipline),
			}

			rec, ok := byKey[key]
			if !ok {
				rec = &models.DisciplineCredit{
					Year:       row.Get(models.ColYear),
					Volume:     textutil.ParseVolumeToken(row.Get(models.ColVolume)),
					Segment:    row.Get(models.ColSegment),
					Series:     row.Get(models.ColSeries),
					Area:       row.Get(models.ColArea),
					Discipline: discipline,
					IconSlug:   iconFor(discipline),
					Roles:      make(map[models.RoleKind]string),
				}
				byKey[key] = rec
				order = append(order, key)
			}

			label := row.Get(models.ColRole)
			credit := row.Credits()
			if kind, matched := classifyRole(label); matched {
				if credit != "" {
					rec.Roles[kind] = credit
				}
			} else if label != "" && credit != "" {
				rec.SetExtra(label, credit)
			}
		}
		// Rows with a blank discipline went to the general stream;
		// "todas"/"geral" rows carry no discipline card of their own.

		indexSoundMusic(ds.SoundMusic, row)
	}

	ds.Disciplines = make([]models.DisciplineCredit, 0, len(order))
	for _, key := range order {
		ds.Disciplines = append(ds.Disciplines, *byKey[key])
	}
	return ds
}

// indexSoundMusic detects sound/music credit rows and records them
// under both the series-qualified and (if unset) series-less key, so a
// series-less query still resolves when only a qualified row exists.
//
// The area condition deliberately also accepts area == "geral" with a
// role containing "creditos"; some general rows land here because of
// it, and the published sheets rely on that.
func indexSoundMusic(idx models.SoundMusicIndex, row models.RawRow) {
	if d := textutil.Fold(row.Get(models.ColDiscipline)); d != "" && d != disciplineGeneral {
		return
	}

	area := textutil.Fold(row.Get(models.ColArea))
	role := textutil.Fold(row.Get(models.ColRole))

	areaHit := area == disciplineGeneral ||
		strings.Contains(area, "som") || strings.Contains(area, "musica") ||
		strings.Contains(role, "som") || strings.Contains(role, "musica")
	roleHit := strings.Contains(role, "creditos") ||
		strings.Contains(role, "som") || strings.Contains(role, "musica")
	if !areaHit || !roleHit {
		return
	}

	year := row.Get(models.ColYear)
	volume := textutil.ParseVolumeToken(row.Get(models.ColVolume))
	segKey := textutil.SegmentKey(row.Get(models.ColSegment))
	credit := row.Credits()
	if year == "" || volume <= 0 || segKey == "" || credit == "" {
		return
	}

	qualified := models.SoundMusicKey{
		Year:       year,
		Volume:     volume,
		SegmentKey: segKey,
		Series:     textutil.Fold(row.Get(models.ColSeries)),
	}
	idx[qualified] = credit

	bare := qualified
	bare.Series = ""
	if _, ok := idx[bare]; !ok {
		idx[bare] = credit
	}
}
