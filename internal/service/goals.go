package service

import "strings"

// FPA goals vary by department; LPA has one building-wide threshold. Goal
// lookup is a case-insensitive prefix match on the area label ("Dry 1st" hits
// the DRY row), first match wins, unrecognized areas get the default.
type deptGoal struct {
	Prefix  string
	Minutes int
}

var fpaGoals = []deptGoal{
	{Prefix: "DRY", Minutes: 16},
	{Prefix: "FDD", Minutes: 18},
	{Prefix: "MP", Minutes: 20},
}

const (
	DefaultFPAGoal = 16
	LPAGoal        = 14

	// Flat thresholds for the one building-wide summary view. Never used for
	// per-area breakdowns.
	BuildingFPAGoal = 16
	BuildingLPAGoal = 14
)

// ResolveFPAGoal returns the FPA threshold for an area.
func ResolveFPAGoal(area string) int {
	upper := strings.ToUpper(strings.TrimSpace(area))
	for _, g := range fpaGoals {
		if strings.HasPrefix(upper, g.Prefix) {
			return g.Minutes
		}
	}
	return DefaultFPAGoal
}

// FPAPasses reports whether a first-pick lateness is on goal for the area.
func FPAPasses(minutes int, area string) bool {
	return minutes <= ResolveFPAGoal(area)
}

// LPAPasses reports whether a last-pick earliness is on goal.
func LPAPasses(minutes int) bool {
	return minutes <= LPAGoal
}

// Building-mode equivalents, used only by the dashboard-wide summary.
func BuildingFPAPasses(minutes int) bool { return minutes <= BuildingFPAGoal }
func BuildingLPAPasses(minutes int) bool { return minutes <= BuildingLPAGoal }
