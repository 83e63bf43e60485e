package service

import (
	"math"
	"sort"

	"github.com/dc6084/backend/internal/models"
)

// ApplyFilters returns the subset of records passing every active criterion.
func ApplyFilters(records []models.EnrichedRecord, criteria models.FilterCriteria) []models.EnrichedRecord {
	out := make([]models.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if criteria.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// CalcStats computes goal-compliance counts and percentages for a subset.
// An empty subset yields zero percentages, never a division failure.
func CalcStats(records []models.EnrichedRecord) models.Stats {
	s := models.Stats{Total: len(records)}
	for _, r := range records {
		fpa := FPAPasses(r.FPAMinutes, r.Area)
		lpa := LPAPasses(r.LPAMinutes)
		if fpa {
			s.FPAGood++
		}
		if lpa {
			s.LPAGood++
		}
		if fpa && lpa {
			s.BothGood++
		}
	}
	s.FPAPct = Percentage(s.FPAGood, s.Total)
	s.LPAPct = Percentage(s.LPAGood, s.Total)
	s.BothPct = Percentage(s.BothGood, s.Total)
	return s
}

// Percentage is round(pass/total*100), defined as 0 when total is 0.
func Percentage(pass, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(pass) / float64(total) * 100))
}

// BuildingStats computes compliance under the flat building-wide thresholds.
// Used by exactly one dashboard view; per-area breakdowns never see it.
func BuildingStats(records []models.EnrichedRecord) models.Stats {
	s := models.Stats{Total: len(records)}
	for _, r := range records {
		fpa := BuildingFPAPasses(r.FPAMinutes)
		lpa := BuildingLPAPasses(r.LPAMinutes)
		if fpa {
			s.FPAGood++
		}
		if lpa {
			s.LPAGood++
		}
		if fpa && lpa {
			s.BothGood++
		}
	}
	s.FPAPct = Percentage(s.FPAGood, s.Total)
	s.LPAPct = Percentage(s.LPAGood, s.Total)
	s.BothPct = Percentage(s.BothGood, s.Total)
	return s
}

// AreaBreakdown groups a subset by (area, shift) and computes stats per
// group. Groups come back in the fixed tie-break order: shift ordinal first,
// then area alphabetically.
func AreaBreakdown(records []models.EnrichedRecord) []models.GroupStats {
	type key struct{ area, shift string }
	groups := map[key][]models.EnrichedRecord{}
	for _, r := range records {
		k := key{r.Area, r.Shift}
		groups[k] = append(groups[k], r)
	}

	out := make([]models.GroupStats, 0, len(groups))
	for k, members := range groups {
		out = append(out, models.GroupStats{
			Area:  k.area,
			Shift: k.shift,
			Stats: CalcStats(members),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if a, b := shiftRank(out[i].Shift), shiftRank(out[j].Shift); a != b {
			return a < b
		}
		return out[i].Area < out[j].Area
	})
	return out
}

// Metric selects which minute value a ranking looks at.
type Metric string

const (
	MetricFPA Metric = "fpa"
	MetricLPA Metric = "lpa"
)

const bottomN = 5

// BottomFive ranks the worst off-goal entries for one role and metric:
// off-goal rows only, descending by minutes, first five. Each entry carries
// how far over its area-resolved goal it landed. A nil result means everyone
// in the subset was on goal.
func BottomFive(records []models.EnrichedRecord, role string, metric Metric) []models.RankedEntry {
	var offGoal []models.EnrichedRecord
	for _, r := range records {
		if r.Role != role {
			continue
		}
		switch metric {
		case MetricFPA:
			if !FPAPasses(r.FPAMinutes, r.Area) {
				offGoal = append(offGoal, r)
			}
		case MetricLPA:
			if !LPAPasses(r.LPAMinutes) {
				offGoal = append(offGoal, r)
			}
		}
	}
	if len(offGoal) == 0 {
		return nil
	}

	minutes := func(r models.EnrichedRecord) int {
		if metric == MetricFPA {
			return r.FPAMinutes
		}
		return r.LPAMinutes
	}
	sort.SliceStable(offGoal, func(i, j int) bool {
		return minutes(offGoal[i]) > minutes(offGoal[j])
	})
	if len(offGoal) > bottomN {
		offGoal = offGoal[:bottomN]
	}

	out := make([]models.RankedEntry, 0, len(offGoal))
	for i, r := range offGoal {
		goal := LPAGoal
		if metric == MetricFPA {
			goal = ResolveFPAGoal(r.Area)
		}
		out = append(out, models.RankedEntry{
			Rank:        i + 1,
			UserID:      r.UserID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Minutes:     minutes(r),
			OverGoalMin: minutes(r) - goal,
		})
	}
	return out
}

// SumHoursLost totals the positive excess over goal for both metrics across
// a subset. Records under goal contribute nothing.
func SumHoursLost(records []models.EnrichedRecord) models.HoursLost {
	var h models.HoursLost
	for _, r := range records {
		if over := r.FPAMinutes - ResolveFPAGoal(r.Area); over > 0 {
			h.FPAMinutes += over
		}
		if over := r.LPAMinutes - LPAGoal; over > 0 {
			h.LPAMinutes += over
		}
	}
	h.TotalMinutes = h.FPAMinutes + h.LPAMinutes
	h.TotalHours = math.Round(float64(h.TotalMinutes)/60*10) / 10
	return h
}
