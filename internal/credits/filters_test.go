package credits

import (
	"reflect"
	"testing"

	"fichahub/pkg/models"
)

func filterRows() []models.RawRow {
	return []models.RawRow{
		row(models.ColYear, "2024", models.ColSegment, "Ensino Médio",
			models.ColSeries, "1ª Série", models.ColVolume, "V2"),
		row(models.ColYear, "2025", models.ColSegment, "Ensino Médio",
			models.ColSeries, "1ª Série", models.ColVolume, "V1"),
		row(models.ColYear, "2025", models.ColSegment, "Ensino Médio",
			models.ColSeries, "2ª Série", models.ColVolume, "V3"),
		row(models.ColYear, "2025", models.ColSegment, "Educação Infantil",
			models.ColVolume, "1"),
		row(models.ColYear, "2025", models.ColSegment, "Anos Iniciais",
			models.ColSeries, "3º Ano", models.ColVolume, "4"),
		// no year: never contributes to the year list
		row(models.ColSegment, "Ensino Médio", models.ColVolume, "9"),
	}
}

func TestAvailableYears_DescendingDeduped(t *testing.T) {
	t.Parallel()

	got := AvailableYears(filterRows())
	want := []string{"2025", "2024"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("years=%v, want %v", got, want)
	}
}

func TestAvailableSegments_ForYear(t *testing.T) {
	t.Parallel()

	got := AvailableSegments(filterRows(), "2025")
	want := []string{"Anos Iniciais", "Educação Infantil", "Ensino Médio"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments=%v, want %v", got, want)
	}
}

func TestAvailableSeries_GatedBySegmentClass(t *testing.T) {
	t.Parallel()

	rows := filterRows()

	if got := AvailableSeries(rows, "2025", "Educação Infantil"); len(got) != 0 {
		t.Fatalf("infantil series=%v, want none (selector not offered)", got)
	}

	got := AvailableSeries(rows, "2025", "Ensino Médio")
	want := []string{"1ª Série", "2ª Série"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("series=%v, want %v", got, want)
	}

	got = AvailableSeries(rows, "2025", "Anos Iniciais")
	want = []string{"3º Ano"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("series=%v, want %v", got, want)
	}
}

func TestAvailableVolumes(t *testing.T) {
	t.Parallel()

	rows := filterRows()

	got := AvailableVolumes(rows, "2025", "Ensino Médio", "")
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("volumes=%v, want %v", got, want)
	}

	got = AvailableVolumes(rows, "2025", "Ensino Médio", "2ª Série")
	want = []int{3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("volumes for series=%v, want %v", got, want)
	}

	if got := AvailableVolumes(rows, "1999", "Ensino Médio", ""); len(got) != 0 {
		t.Fatalf("volumes for missing year=%v, want none", got)
	}
}
