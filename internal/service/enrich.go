package service

import (
	"github.com/rs/zerolog"

	"github.com/dc6084/backend/internal/models"
)

// EnrichSummary reports how the join went. Diagnostic only; the unmatched
// sample is capped so a wrong roster upload does not flood the status message.
type EnrichSummary struct {
	Matched       int      `json:"matched"`
	Unmatched     int      `json:"unmatched"`
	UnmatchedIDs  []string `json:"unmatchedIds,omitempty"`
	TotalIncoming int      `json:"total"`
}

const unmatchedSampleCap = 5

// Enrich joins metric entries against the roster by normalized user ID.
// The lookup is rebuilt on every call so a roster replacement can never leave
// a stale join behind. Metric rows with no roster match are dropped from the
// result; they show up only in the summary counts.
func Enrich(metrics []models.MetricEntry, roster []models.RosterEntry, logger zerolog.Logger) ([]models.EnrichedRecord, EnrichSummary) {
	index := make(map[string]models.RosterEntry, len(roster))
	for _, a := range roster {
		index[NormalizeID(a.UserID)] = a
	}

	summary := EnrichSummary{TotalIncoming: len(metrics)}
	seenUnmatched := map[string]bool{}
	out := make([]models.EnrichedRecord, 0, len(metrics))

	for _, m := range metrics {
		match, ok := index[NormalizeID(m.UserID)]
		if !ok {
			summary.Unmatched++
			key := NormalizeID(m.UserID)
			if !seenUnmatched[key] && len(summary.UnmatchedIDs) < unmatchedSampleCap {
				summary.UnmatchedIDs = append(summary.UnmatchedIDs, m.UserID)
			}
			seenUnmatched[key] = true
			continue
		}
		summary.Matched++

		first, last := NamePartsOf(match.FirstName, match.LastName, match.Name)
		role := m.Role
		if role == "" {
			role = match.Role
		}

		out = append(out, models.EnrichedRecord{
			UserID:     m.UserID,
			Date:       m.Date,
			FPAMinutes: m.FPAMinutes,
			LPAMinutes: m.LPAMinutes,
			FirstName:  first,
			LastName:   last,
			Area:       match.Area,
			Shift:      match.Shift,
			Role:       role,
		})
	}

	logger.Debug().
		Int("matched", summary.Matched).
		Int("unmatched", summary.Unmatched).
		Int("total", summary.TotalIncoming).
		Msg("enrichment complete")

	return out, summary
}
