package textutil

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The spreadsheet is hand-authored, so the same segment shows up as
// "Educação Infantil", "Ensino Infantil", "INFANTIL" and so on. All
// comparisons go through here first.

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// earlyChildhood is the canonical bucket token: any segment wording that
// contains it is treated as the same segment.
const earlyChildhood = "infantil"

// StripDiacritics removes combining marks (é -> e, ç -> c).
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Fold trims, lowercases and strips accents. This is the comparison form
// for every human-authored label in the sheet.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(StripDiacritics(s)))
}

// NormalizeSegment is the canonical comparison form of a segment name.
func NormalizeSegment(s string) string {
	return Fold(s)
}

// SegmentsMatch reports whether two segment spellings mean the same
// segment. Early-childhood wordings all collapse into one bucket.
func SegmentsMatch(a, b string) bool {
	na, nb := NormalizeSegment(a), NormalizeSegment(b)
	if na == nb {
		return true
	}
	return strings.Contains(na, earlyChildhood) && strings.Contains(nb, earlyChildhood)
}

// SegmentKey returns the lookup key for a segment: the normalized form,
// collapsed to "infantil" for any early-childhood wording. Empty input
// yields an empty key.
func SegmentKey(s string) string {
	n := NormalizeSegment(s)
	if n == "" {
		return ""
	}
	if strings.Contains(n, earlyChildhood) {
		return earlyChildhood
	}
	return n
}

// IsEarlyChildhood reports whether the segment falls into the
// early-childhood bucket.
func IsEarlyChildhood(s string) bool {
	return SegmentKey(s) == earlyChildhood
}

// ParseVolumeToken extracts the volume number out of a cell value:
// "4" -> 4, "V4" -> 4. Anything unparsable yields 0, which downstream
// code treats as "no volume". Never fails.
func ParseVolumeToken(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	r := []rune(v)
	if len(r) >= 2 && unicode.IsLetter(r[0]) {
		if n, err := strconv.Atoi(string(r[1:])); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
