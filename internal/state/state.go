// Package state owns the dashboard's mutable session data: current roster,
// current metric set, active filter, and sort order. Collections are swapped
// wholesale under the lock so no reader ever observes a half-updated roster;
// readers get snapshot copies.
package state

import (
	"errors"
	"sync"

	"github.com/dc6084/backend/internal/models"
)

// ErrImportInFlight rejects a second import started before the first one
// finished.
var ErrImportInFlight = errors.New("an import is already in progress")

type State struct {
	mu sync.RWMutex

	roster     []models.RosterEntry
	rosterDate string // upload timestamp text, "" while on the sample

	metrics    []models.MetricEntry
	reportDate string // date scanned from the report filename

	filter models.FilterCriteria
	sort   models.SortState

	importing bool
}

// New starts with the given roster (sample or persisted), everything-matches
// filters, and the default sort.
func New(roster []models.RosterEntry, rosterDate string) *State {
	return &State{
		roster:     roster,
		rosterDate: rosterDate,
		filter:     models.AllFilters(),
		sort:       models.DefaultSort(),
	}
}

// BeginImport claims the single import slot. Callers must pair a successful
// claim with EndImport.
func (s *State) BeginImport() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.importing {
		return ErrImportInFlight
	}
	s.importing = true
	return nil
}

func (s *State) EndImport() {
	s.mu.Lock()
	s.importing = false
	s.mu.Unlock()
}

// ReplaceRoster swaps the whole roster.
func (s *State) ReplaceRoster(roster []models.RosterEntry, uploadedAt string) {
	s.mu.Lock()
	s.roster = roster
	s.rosterDate = uploadedAt
	s.mu.Unlock()
}

// Roster returns a snapshot copy of the current roster and its upload time.
func (s *State) Roster() ([]models.RosterEntry, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RosterEntry, len(s.roster))
	copy(out, s.roster)
	return out, s.rosterDate
}

// ReplaceMetrics swaps the whole metric set and its report date.
func (s *State) ReplaceMetrics(metrics []models.MetricEntry, reportDate string) {
	s.mu.Lock()
	s.metrics = metrics
	s.reportDate = reportDate
	s.mu.Unlock()
}

// Metrics returns a snapshot copy of the current metric set.
func (s *State) Metrics() ([]models.MetricEntry, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MetricEntry, len(s.metrics))
	copy(out, s.metrics)
	return out, s.reportDate
}

func (s *State) SetFilter(f models.FilterCriteria) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

func (s *State) Filter() models.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *State) SetSort(sort models.SortState) {
	s.mu.Lock()
	s.sort = sort
	s.mu.Unlock()
}

func (s *State) Sort() models.SortState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}
