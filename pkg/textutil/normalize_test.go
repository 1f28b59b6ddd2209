package textutil

import "testing"

func TestParseVolumeToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"4", 4},
		{"V4", 4},
		{"v12", 12},
		{" V4 ", 4},
		{"", 0},
		{"abc", 0},
		{"V", 0},
		{"-3", 0},
		{"10", 10},
	}
	for _, tc := range cases {
		if got := ParseVolumeToken(tc.in); got != tc.want {
			t.Fatalf("ParseVolumeToken(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSegmentsMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"Ensino Infantil", "INFANTIL", true},
		{"Educação Infantil", "Ensino Infantil", true},
		{"Ensino Médio", "ensino medio", true},
		{"Médio", "Fundamental", false},
		{"Anos Iniciais", "Anos Finais", false},
		{"", "", true},
	}
	for _, tc := range cases {
		if got := SegmentsMatch(tc.a, tc.b); got != tc.want {
			t.Fatalf("SegmentsMatch(%q, %q)=%v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSegmentKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Educação Infantil", "infantil"},
		{"INFANTIL", "infantil"},
		{"Ensino Médio", "ensino medio"},
		{"  Anos Iniciais ", "anos iniciais"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SegmentKey(tc.in); got != tc.want {
			t.Fatalf("SegmentKey(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripDiacritics(t *testing.T) {
	t.Parallel()

	if got := StripDiacritics("Educação Física"); got != "Educacao Fisica" {
		t.Fatalf("StripDiacritics=%q", got)
	}
	if got := Fold("  CRÉDITOS Gerais "); got != "creditos gerais" {
		t.Fatalf("Fold=%q", got)
	}
}
