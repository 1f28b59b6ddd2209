package credits

import (
	"sort"
	"strings"

	"fichahub/pkg/models"
	"fichahub/pkg/textutil"
)

// The filter-option calculators are pure functions over the raw row
// set. They never touch the selection; Reconcile is the only place
// that does.

// seriesSegments are the segment classes for which a series selector
// makes sense (folded substrings).
var seriesSegments = []string{"medio", "anos iniciais", "anos finais"}

// AvailableYears returns the distinct non-blank years across all rows,
// most recent first.
func AvailableYears(rows []models.RawRow) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		y := row.Get(models.ColYear)
		if y == "" {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// AvailableSegments returns the distinct non-blank segments among rows
// of the given year, in lexicographic order.
func AvailableSegments(rows []models.RawRow, year string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		if row.Get(models.ColYear) != year {
			continue
		}
		s := row.Get(models.ColSegment)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// AvailableSeries returns the distinct non-blank series among rows
// matching year and segment. Only the high-school and early/later
// grades segments carry series at all; everything else yields nil.
func AvailableSeries(rows []models.RawRow, year, segment string) []string {
	if !segmentHasSeries(segment) {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		if row.Get(models.ColYear) != year {
			continue
		}
		if !textutil.SegmentsMatch(row.Get(models.ColSegment), segment) {
			continue
		}
		s := row.Get(models.ColSeries)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// AvailableVolumes returns the distinct positive volume numbers among
// rows matching year, segment and (when one is selected) series,
// smallest first.
func AvailableVolumes(rows []models.RawRow, year, segment, series string) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, row := range rows {
		if row.Get(models.ColYear) != year {
			continue
		}
		if !textutil.SegmentsMatch(row.Get(models.ColSegment), segment) {
			continue
		}
		if series != "" && row.Get(models.ColSeries) != series {
			continue
		}
		v := textutil.ParseVolumeToken(row.Get(models.ColVolume))
		if v <= 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func segmentHasSeries(segment string) bool {
	n := textutil.NormalizeSegment(segment)
	for _, token := range seriesSegments {
		if strings.Contains(n, token) {
			return true
		}
	}
	return false
}
