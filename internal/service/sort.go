package service

import (
	"sort"
	"strings"

	"github.com/dc6084/backend/internal/models"
)

// shiftRank orders shifts by ordinal, not lexically: 1st < 2nd < 4th < 5th.
// Unrecognized shifts rank after all known ones.
func shiftRank(shift string) int {
	switch shift {
	case "1st":
		return 0
	case "2nd":
		return 1
	case "4th":
		return 2
	case "5th":
		return 3
	}
	return 4
}

// CompareRecords orders two records under the active sort state. The primary
// column honors the direction flag; the tie-break chain (shift ordinal, then
// area, then role) always runs in its fixed direction so equal-key rows land
// in the same order no matter which way the table is sorted.
func CompareRecords(a, b models.EnrichedRecord, s models.SortState) int {
	if c := comparePrimary(a, b, s.Column); c != 0 {
		if !s.Ascending {
			return -c
		}
		return c
	}
	if c := compareInt(shiftRank(a.Shift), shiftRank(b.Shift)); c != 0 {
		return c
	}
	if c := compareFold(a.Area, b.Area); c != 0 {
		return c
	}
	return compareFold(a.Role, b.Role)
}

// SortRecords sorts a copy-safe slice in place under the active sort state.
func SortRecords(records []models.EnrichedRecord, s models.SortState) {
	sort.SliceStable(records, func(i, j int) bool {
		return CompareRecords(records[i], records[j], s) < 0
	})
}

func comparePrimary(a, b models.EnrichedRecord, column string) int {
	switch column {
	case models.ColFPA:
		return compareInt(a.FPAMinutes, b.FPAMinutes)
	case models.ColLPA:
		return compareInt(a.LPAMinutes, b.LPAMinutes)
	case models.ColUserID:
		return compareFold(a.UserID, b.UserID)
	case models.ColFirstName:
		return compareFold(a.FirstName, b.FirstName)
	case models.ColLastName:
		return compareFold(a.LastName, b.LastName)
	case models.ColArea:
		return compareFold(a.Area, b.Area)
	case models.ColShift:
		return compareFold(a.Shift, b.Shift)
	case models.ColRole:
		return compareFold(a.Role, b.Role)
	case models.ColOverall:
		return compareFold(overallLabel(a), overallLabel(b))
	}
	return 0
}

func overallLabel(r models.EnrichedRecord) string {
	if FPAPasses(r.FPAMinutes, r.Area) && LPAPasses(r.LPAMinutes) {
		return "On Goal"
	}
	return "Off Goal"
}

// OverallOnGoal reports whether a record passes both metrics.
func OverallOnGoal(r models.EnrichedRecord) bool {
	return FPAPasses(r.FPAMinutes, r.Area) && LPAPasses(r.LPAMinutes)
}

// ToggleSort applies a header activation: same column flips direction, a new
// column resets to ascending.
func ToggleSort(current models.SortState, column string) models.SortState {
	if current.Column == column {
		return models.SortState{Column: column, Ascending: !current.Ascending}
	}
	return models.SortState{Column: column, Ascending: true}
}

// ValidSortColumn reports whether the key names a sortable column.
func ValidSortColumn(column string) bool {
	switch column {
	case models.ColUserID, models.ColFirstName, models.ColLastName,
		models.ColArea, models.ColShift, models.ColRole,
		models.ColFPA, models.ColLPA, models.ColOverall:
		return true
	}
	return false
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
