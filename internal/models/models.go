package models

// Roles a metric report can be keyed to. The upload slot decides the role,
// never a column in the file.
const (
	RoleOrderfiller = "Orderfiller"
	RoleLiftDriver  = "Lift Driver"
)

// Shifts run 1st, 2nd, 4th, 5th at this building. There is no 3rd.
var Shifts = []string{"1st", "2nd", "4th", "5th"}

// RosterEntry is one associate from the uploaded roster. The roster is the
// source of truth for names, areas, shifts, and roles. The whole collection is
// replaced on every upload; it is never merged incrementally.
type RosterEntry struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Area      string `json:"area"`
	Shift     string `json:"shift"`
	Role      string `json:"role"`
}

// MetricEntry is one row from an FPA/LPA report. Role comes from which upload
// slot the file was placed in. Metric entries live in memory only and are
// replaced wholesale per import session.
type MetricEntry struct {
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	FPAMinutes int    `json:"fpaMinutes"`
	LPAMinutes int    `json:"lpaMinutes"`
	Role       string `json:"role"`
}

// EnrichedRecord is the read-only join of a MetricEntry with its roster match.
// Area and shift always come from the roster; role prefers the import-assigned
// value. Metric rows with no roster match never become EnrichedRecords.
type EnrichedRecord struct {
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	FPAMinutes int    `json:"fpaMinutes"`
	LPAMinutes int    `json:"lpaMinutes"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Area       string `json:"area"`
	Shift      string `json:"shift"`
	Role       string `json:"role"`
}

// FilterCriteria is the dashboard's active slice. Each field is either the
// literal "All" or an exact-match value.
type FilterCriteria struct {
	Area  string `json:"area" validate:"required"`
	Shift string `json:"shift" validate:"required"`
	Role  string `json:"role" validate:"required"`
}

const FilterAll = "All"

// AllFilters matches every record.
func AllFilters() FilterCriteria {
	return FilterCriteria{Area: FilterAll, Shift: FilterAll, Role: FilterAll}
}

// Matches reports whether a record passes every active criterion.
func (f FilterCriteria) Matches(r EnrichedRecord) bool {
	return (f.Area == FilterAll || r.Area == f.Area) &&
		(f.Shift == FilterAll || r.Shift == f.Shift) &&
		(f.Role == FilterAll || r.Role == f.Role)
}

// Sortable column keys for the full data table.
const (
	ColUserID    = "userId"
	ColFirstName = "firstName"
	ColLastName  = "lastName"
	ColArea      = "area"
	ColShift     = "shift"
	ColRole      = "role"
	ColFPA       = "fpa"
	ColLPA       = "lpa"
	ColOverall   = "overall"
)

// SortState is the active table ordering. Ties always fall through the fixed
// shift-ordinal, area, role chain regardless of Ascending.
type SortState struct {
	Column    string `json:"column"`
	Ascending bool   `json:"ascending"`
}

// DefaultSort shows the worst FPA offenders first, matching the dashboard's
// startup view.
func DefaultSort() SortState {
	return SortState{Column: ColFPA, Ascending: false}
}

// Stats are goal-compliance counts over one record subset.
type Stats struct {
	Total    int `json:"total"`
	FPAGood  int `json:"fpaGood"`
	LPAGood  int `json:"lpaGood"`
	BothGood int `json:"bothGood"`
	FPAPct   int `json:"fpaPct"`
	LPAPct   int `json:"lpaPct"`
	BothPct  int `json:"bothPct"`
}

// GroupStats are Stats for one (area, shift) slice of the filtered set.
type GroupStats struct {
	Area  string `json:"area"`
	Shift string `json:"shift"`
	Stats
}

// RankedEntry is one row of a bottom-five list: the associate's raw minutes and
// how far that overshoots the goal resolved for their area.
type RankedEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Minutes     int    `json:"minutes"`
	OverGoalMin int    `json:"overGoalMin"`
}

// HoursLost is the summed positive excess over goal across a record subset.
type HoursLost struct {
	FPAMinutes   int     `json:"fpaMinutes"`
	LPAMinutes   int     `json:"lpaMinutes"`
	TotalMinutes int     `json:"totalMinutes"`
	TotalHours   float64 `json:"totalHours"`
}
