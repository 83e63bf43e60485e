package service

import (
	"sort"
	"strings"

	"github.com/dc6084/backend/internal/models"
)

// SampleRoster is the fixed fallback used until a real roster is uploaded and
// by the reset action. It covers every area and both roles so the dashboard
// renders something meaningful out of the box.
func SampleRoster() []models.RosterEntry {
	return []models.RosterEntry{
		{UserID: "D6-1001", Name: "John Smith", FirstName: "John", LastName: "Smith", Area: "Dry 1st", Shift: "1st", Role: models.RoleOrderfiller},
		{UserID: "D6-1003", Name: "Mike Johnson", FirstName: "Mike", LastName: "Johnson", Area: "Dry 1st", Shift: "1st", Role: models.RoleLiftDriver},
		{UserID: "D6-1006", Name: "Lisa Davis", FirstName: "Lisa", LastName: "Davis", Area: "Dry 2nd", Shift: "2nd", Role: models.RoleOrderfiller},
		{UserID: "D6-1007", Name: "Chris Miller", FirstName: "Chris", LastName: "Miller", Area: "Dry 2nd", Shift: "2nd", Role: models.RoleLiftDriver},
		{UserID: "D6-1011", Name: "James Anderson", FirstName: "James", LastName: "Anderson", Area: "Dry 4th", Shift: "4th", Role: models.RoleOrderfiller},
		{UserID: "D6-1013", Name: "Robert Jackson", FirstName: "Robert", LastName: "Jackson", Area: "Dry 4th", Shift: "4th", Role: models.RoleLiftDriver},
		{UserID: "D6-1016", Name: "Nancy Harris", FirstName: "Nancy", LastName: "Harris", Area: "Dry 5th", Shift: "5th", Role: models.RoleOrderfiller},
		{UserID: "D6-1017", Name: "Steven Martin", FirstName: "Steven", LastName: "Martin", Area: "Dry 5th", Shift: "5th", Role: models.RoleLiftDriver},
		{UserID: "D6-2001", Name: "Paul Robinson", FirstName: "Paul", LastName: "Robinson", Area: "FDD 1st", Shift: "1st", Role: models.RoleOrderfiller},
		{UserID: "D6-2002", Name: "Donna Walker", FirstName: "Donna", LastName: "Walker", Area: "FDD 1st", Shift: "1st", Role: models.RoleLiftDriver},
		{UserID: "D6-2006", Name: "Margaret Hill", FirstName: "Margaret", LastName: "Hill", Area: "FDD 2nd", Shift: "2nd", Role: models.RoleOrderfiller},
		{UserID: "D6-2007", Name: "Kenneth King", FirstName: "Kenneth", LastName: "King", Area: "FDD 2nd", Shift: "2nd", Role: models.RoleLiftDriver},
		{UserID: "D6-2011", Name: "Raymond Perez", FirstName: "Raymond", LastName: "Perez", Area: "FDD 4th", Shift: "4th", Role: models.RoleOrderfiller},
		{UserID: "D6-2012", Name: "Helen Campbell", FirstName: "Helen", LastName: "Campbell", Area: "FDD 4th", Shift: "4th", Role: models.RoleLiftDriver},
		{UserID: "D6-2016", Name: "Carol Phillips", FirstName: "Carol", LastName: "Phillips", Area: "FDD 5th", Shift: "5th", Role: models.RoleOrderfiller},
		{UserID: "D6-2017", Name: "Roger Evans", FirstName: "Roger", LastName: "Evans", Area: "FDD 5th", Shift: "5th", Role: models.RoleLiftDriver},
		{UserID: "D6-3001", Name: "George Young", FirstName: "George", LastName: "Young", Area: "MP 1st", Shift: "1st", Role: models.RoleOrderfiller},
		{UserID: "D6-3002", Name: "Angela Baker", FirstName: "Angela", LastName: "Baker", Area: "MP 1st", Shift: "1st", Role: models.RoleLiftDriver},
		{UserID: "D6-3006", Name: "Stephanie Stewart", FirstName: "Stephanie", LastName: "Stewart", Area: "MP 2nd", Shift: "2nd", Role: models.RoleOrderfiller},
		{UserID: "D6-3007", Name: "Aaron Sanchez", FirstName: "Aaron", LastName: "Sanchez", Area: "MP 2nd", Shift: "2nd", Role: models.RoleLiftDriver},
		{UserID: "D6-3011", Name: "Ryan Cook", FirstName: "Ryan", LastName: "Cook", Area: "MP 4th", Shift: "4th", Role: models.RoleOrderfiller},
		{UserID: "D6-3012", Name: "Laura Morgan", FirstName: "Laura", LastName: "Morgan", Area: "MP 4th", Shift: "4th", Role: models.RoleLiftDriver},
		{UserID: "D6-3016", Name: "Megan Rivera", FirstName: "Megan", LastName: "Rivera", Area: "MP 5th", Shift: "5th", Role: models.RoleOrderfiller},
		{UserID: "D6-3017", Name: "Nathan Cooper", FirstName: "Nathan", LastName: "Cooper", Area: "MP 5th", Shift: "5th", Role: models.RoleLiftDriver},
	}
}

// FilterOptions extracts the distinct area/shift/role values present in the
// roster, sorted, for the dashboard dropdowns.
func FilterOptions(roster []models.RosterEntry) (areas, shifts, roles []string) {
	return distinct(roster, func(e models.RosterEntry) string { return e.Area }),
		distinct(roster, func(e models.RosterEntry) string { return e.Shift }),
		distinct(roster, func(e models.RosterEntry) string { return e.Role })
}

func distinct(roster []models.RosterEntry, pick func(models.RosterEntry) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range roster {
		v := strings.TrimSpace(pick(e))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
