package service

import "testing"

func TestResolveFPAGoal(t *testing.T) {
	cases := map[string]int{
		"Dry 1st": 16,
		"FDD 2nd": 18,
		"MP 4th":  20,
		"mp 5th":  20, // case-insensitive
		"Zzz 1st": DefaultFPAGoal,
		"":        DefaultFPAGoal,
	}
	for area, want := range cases {
		if got := ResolveFPAGoal(area); got != want {
			t.Errorf("ResolveFPAGoal(%q) = %d, want %d", area, got, want)
		}
	}
}

func TestGoalBoundaries(t *testing.T) {
	// On goal means at or under the threshold.
	if !FPAPasses(16, "Dry 1st") {
		t.Fatalf("16 must pass the Dry goal of 16")
	}
	if FPAPasses(17, "Dry 1st") {
		t.Fatalf("17 must fail the Dry goal of 16")
	}
	if !LPAPasses(14) || LPAPasses(15) {
		t.Fatalf("LPA boundary at 14 broken")
	}
	if !BuildingFPAPasses(16) || BuildingFPAPasses(17) {
		t.Fatalf("building FPA boundary at 16 broken")
	}
}
