package service

import (
	"testing"

	"github.com/dc6084/backend/internal/models"
)

func TestSortRecordsPrimaryColumn(t *testing.T) {
	records := []models.EnrichedRecord{
		rec("D6-1", "Dry 1st", "1st", models.RoleOrderfiller, 12, 10),
		rec("D6-2", "Dry 1st", "1st", models.RoleOrderfiller, 30, 10),
		rec("D6-3", "Dry 1st", "1st", models.RoleOrderfiller, 8, 10),
	}

	SortRecords(records, models.SortState{Column: models.ColFPA, Ascending: true})
	if records[0].FPAMinutes != 8 || records[2].FPAMinutes != 30 {
		t.Fatalf("ascending fpa order broken: %v", minutesOf(records))
	}

	SortRecords(records, models.SortState{Column: models.ColFPA, Ascending: false})
	if records[0].FPAMinutes != 30 || records[2].FPAMinutes != 8 {
		t.Fatalf("descending fpa order broken: %v", minutesOf(records))
	}
}

func minutesOf(records []models.EnrichedRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.FPAMinutes
	}
	return out
}

func TestSortTieBreakShiftOrdinal(t *testing.T) {
	// Equal fpa minutes; shifts arrive scrambled. "4th" must sort before
	// "5th" but after "2nd", and an unknown shift goes last.
	records := []models.EnrichedRecord{
		rec("D6-1", "Dry 5th", "5th", models.RoleOrderfiller, 10, 10),
		rec("D6-2", "Dry 1st", "1st", models.RoleOrderfiller, 10, 10),
		rec("D6-3", "Dry Weekend", "Weekend", models.RoleOrderfiller, 10, 10),
		rec("D6-4", "Dry 4th", "4th", models.RoleOrderfiller, 10, 10),
		rec("D6-5", "Dry 2nd", "2nd", models.RoleOrderfiller, 10, 10),
	}
	SortRecords(records, models.SortState{Column: models.ColFPA, Ascending: true})

	want := []string{"1st", "2nd", "4th", "5th", "Weekend"}
	for i, w := range want {
		if records[i].Shift != w {
			t.Fatalf("position %d has shift %q, want %q", i, records[i].Shift, w)
		}
	}
}

func TestSortTieBreakIgnoresDirection(t *testing.T) {
	a := rec("D6-1", "Dry 1st", "1st", models.RoleOrderfiller, 10, 10)
	b := rec("D6-2", "Dry 2nd", "2nd", models.RoleOrderfiller, 10, 10)

	asc := models.SortState{Column: models.ColFPA, Ascending: true}
	desc := models.SortState{Column: models.ColFPA, Ascending: false}

	if CompareRecords(a, b, asc) >= 0 {
		t.Fatal("1st shift should order before 2nd under ascending")
	}
	if CompareRecords(a, b, desc) >= 0 {
		t.Fatal("tie-break must not flip with the direction flag")
	}
}

func TestSortTieBreakAreaThenRole(t *testing.T) {
	records := []models.EnrichedRecord{
		rec("D6-1", "MP 1st", "1st", models.RoleOrderfiller, 10, 10),
		rec("D6-2", "Dry 1st", "1st", models.RoleOrderfiller, 10, 10),
		rec("D6-3", "Dry 1st", "1st", models.RoleLiftDriver, 10, 10),
	}
	SortRecords(records, models.SortState{Column: models.ColFPA, Ascending: false})

	if records[0].UserID != "D6-3" || records[1].UserID != "D6-2" || records[2].UserID != "D6-1" {
		t.Fatalf("area/role tie-break order wrong: %s %s %s",
			records[0].UserID, records[1].UserID, records[2].UserID)
	}
}

func TestSortOverallColumn(t *testing.T) {
	on := rec("D6-1", "Dry 1st", "1st", models.RoleOrderfiller, 10, 10)
	off := rec("D6-2", "Dry 1st", "1st", models.RoleOrderfiller, 30, 30)

	records := []models.EnrichedRecord{on, off}
	SortRecords(records, models.SortState{Column: models.ColOverall, Ascending: true})
	if records[0].UserID != "D6-2" {
		t.Fatal("\"Off Goal\" sorts before \"On Goal\" ascending")
	}
}

func TestToggleSort(t *testing.T) {
	s := models.DefaultSort()
	if s.Column != models.ColFPA || s.Ascending {
		t.Fatalf("default sort = %+v", s)
	}

	s = ToggleSort(s, models.ColFPA)
	if !s.Ascending {
		t.Fatal("same column must flip direction")
	}
	s = ToggleSort(s, models.ColLPA)
	if s.Column != models.ColLPA || !s.Ascending {
		t.Fatalf("new column must reset ascending, got %+v", s)
	}
	s = ToggleSort(s, models.ColLPA)
	if s.Ascending {
		t.Fatal("second activation must flip back")
	}
}

func TestValidSortColumn(t *testing.T) {
	for _, col := range []string{
		models.ColUserID, models.ColFirstName, models.ColLastName,
		models.ColArea, models.ColShift, models.ColRole,
		models.ColFPA, models.ColLPA, models.ColOverall,
	} {
		if !ValidSortColumn(col) {
			t.Errorf("%q should be sortable", col)
		}
	}
	for _, col := range []string{"", "date", "minutes", "FPA"} {
		if ValidSortColumn(col) {
			t.Errorf("%q should be rejected", col)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	// Fully equal keys keep their arrival order.
	records := []models.EnrichedRecord{
		rec("D6-A", "Dry 1st", "1st", models.RoleOrderfiller, 10, 10),
		rec("D6-B", "Dry 1st", "1st", models.RoleOrderfiller, 10, 10),
	}
	SortRecords(records, models.SortState{Column: models.ColFPA, Ascending: false})
	if records[0].UserID != "D6-A" || records[1].UserID != "D6-B" {
		t.Fatalf("stable order lost: %s %s", records[0].UserID, records[1].UserID)
	}
}
