package credits

import (
	"fichahub/pkg/models"
	"fichahub/pkg/textutil"
)

// Options bundles the four filter-option lists for one settled
// selection, ready for cascading selects on the client.
type Options struct {
	Years    []string `json:"years"`
	Segments []string `json:"segments"`
	Series   []string `json:"series"`
	Volumes  []int    `json:"volumes"`
}

// Reconcile settles a selection against the row set with the
// forward-only cascade: year, then segment, then series, then volume.
// Each level falls back to the first available option when the current
// value is no longer offered, and a level never reacts to anything
// downstream of it. The result always points at a combination for
// which option lists exist; those lists may legitimately select zero
// credit records.
func Reconcile(rows []models.RawRow, sel models.Selection) models.Selection {
	years := AvailableYears(rows)
	if !containsString(years, sel.Year) {
		sel.Year = firstString(years)
	}

	segments := AvailableSegments(rows, sel.Year)
	if !containsSegment(segments, sel.Segment) {
		sel.Segment = firstString(segments)
	}

	series := AvailableSeries(rows, sel.Year, sel.Segment)
	if len(series) == 0 {
		sel.Series = ""
	} else if !containsString(series, sel.Series) {
		sel.Series = series[0]
	}

	volumes := AvailableVolumes(rows, sel.Year, sel.Segment, sel.Series)
	if !containsInt(volumes, sel.Volume) {
		if len(volumes) > 0 {
			sel.Volume = volumes[0]
		} else {
			sel.Volume = 0
		}
	}

	return sel
}

// OptionsFor computes the option lists for an already-settled
// selection.
func OptionsFor(rows []models.RawRow, sel models.Selection) Options {
	return Options{
		Years:    AvailableYears(rows),
		Segments: AvailableSegments(rows, sel.Year),
		Series:   AvailableSeries(rows, sel.Year, sel.Segment),
		Volumes:  AvailableVolumes(rows, sel.Year, sel.Segment, sel.Series),
	}
}

func containsString(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// containsSegment tolerates spelling variants of the same segment.
func containsSegment(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, x := range list {
		if textutil.SegmentsMatch(x, v) {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func firstString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
