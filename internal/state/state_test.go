package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/dc6084/backend/internal/models"
)

func TestNewDefaults(t *testing.T) {
	roster := []models.RosterEntry{{UserID: "D6-1001", Name: "John Smith"}}
	s := New(roster, "")

	if f := s.Filter(); f != models.AllFilters() {
		t.Fatalf("initial filter = %+v", f)
	}
	if sort := s.Sort(); sort != models.DefaultSort() {
		t.Fatalf("initial sort = %+v", sort)
	}
	got, date := s.Roster()
	if len(got) != 1 || date != "" {
		t.Fatalf("initial roster = %v, date %q", got, date)
	}
}

func TestImportGuard(t *testing.T) {
	s := New(nil, "")

	if err := s.BeginImport(); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	if err := s.BeginImport(); !errors.Is(err, ErrImportInFlight) {
		t.Fatalf("second claim err = %v, want ErrImportInFlight", err)
	}
	s.EndImport()
	if err := s.BeginImport(); err != nil {
		t.Fatalf("claim after release failed: %v", err)
	}
	s.EndImport()
}

func TestRosterSnapshotIsolation(t *testing.T) {
	s := New([]models.RosterEntry{{UserID: "D6-1001", Area: "Dry 1st"}}, "2026-02-11")

	snap, _ := s.Roster()
	snap[0].Area = "mutated"

	again, _ := s.Roster()
	if again[0].Area != "Dry 1st" {
		t.Fatal("mutating a snapshot leaked into state")
	}
}

func TestReplaceMetricsSwapsWholesale(t *testing.T) {
	s := New(nil, "")
	s.ReplaceMetrics([]models.MetricEntry{{UserID: "D6-1001"}, {UserID: "D6-1002"}}, "2026-02-10")
	s.ReplaceMetrics([]models.MetricEntry{{UserID: "D6-2001"}}, "2026-02-11")

	metrics, date := s.Metrics()
	if len(metrics) != 1 || metrics[0].UserID != "D6-2001" || date != "2026-02-11" {
		t.Fatalf("metrics after swap = %v, date %q", metrics, date)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := New([]models.RosterEntry{{UserID: "D6-1001"}}, "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.ReplaceRoster([]models.RosterEntry{{UserID: "D6-1001"}}, "now")
				s.SetFilter(models.AllFilters())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				roster, _ := s.Roster()
				if len(roster) != 1 {
					t.Error("reader saw half-updated roster")
					return
				}
				_ = s.Filter()
			}
		}()
	}
	wg.Wait()
}
