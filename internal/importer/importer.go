// Package importer maps raw spreadsheet rows onto typed roster and metric
// records. The loose-to-strict boundary lives here: everything upstream is
// untyped cells, everything downstream is models structs.
package importer

import (
	"errors"
	"fmt"
	"mime/multipart"
	"regexp"
	"strconv"
	"time"

	"github.com/dc6084/backend/internal/models"
	"github.com/dc6084/backend/internal/service"
	"github.com/dc6084/backend/internal/sheet"
)

var (
	// ErrFileFormat means the decoding collaborator could not make sense of
	// the upload. Surfaced verbatim to the user; no state is touched.
	ErrFileFormat = errors.New("file format error")

	// ErrNoValidRows means the file decoded fine but produced nothing usable.
	ErrNoValidRows = errors.New("no valid rows found, check column headers")
)

// DecodeFile opens one uploaded file and returns the rows of its first sheet.
func DecodeFile(fh *multipart.FileHeader) ([][]any, error) {
	dec, err := sheet.ForFile(fh.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileFormat, fh.Filename, err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrFileFormat, fh.Filename, err)
	}
	defer f.Close()

	rows, err := dec.Rows(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileFormat, fh.Filename, err)
	}
	return rows, nil
}

// ParseRoster turns sheet rows into roster entries. Rows without a user ID
// are dropped; all-empty rows are skipped. Name resolution prefers separate
// first/last columns over a combined name column.
func ParseRoster(rows [][]any) ([]models.RosterEntry, error) {
	if len(rows) < 2 {
		return nil, ErrNoValidRows
	}
	mapped := MapHeaders(rows[0], RosterColumns)

	var out []models.RosterEntry
	for _, row := range rows[1:] {
		if rowIsEmpty(row) {
			continue
		}
		obj := RowToObject(row, mapped)

		e := models.RosterEntry{
			UserID: cellString(obj[fieldUserID]),
			Area:   cellString(obj[fieldArea]),
			Shift:  service.NormalizeShift(cellString(obj[fieldShift])),
			Role:   cellString(obj[fieldRole]),
		}
		if e.UserID == "" {
			continue
		}

		first := cellString(obj[fieldFirstName])
		last := cellString(obj[fieldLastName])
		full := cellString(obj[fieldName])
		if first != "" || last != "" {
			e.FirstName = first
			e.LastName = last
			e.Name = joinName(first, last)
		} else {
			e.Name = full
			e.FirstName, e.LastName = service.SplitName(full)
		}

		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, ErrNoValidRows
	}
	return out, nil
}

// ParseMetrics turns sheet rows into metric entries for one role. The role is
// decided by which upload slot the file came from, never by a column.
func ParseMetrics(rows [][]any, role string) ([]models.MetricEntry, error) {
	if len(rows) < 2 {
		return nil, ErrNoValidRows
	}
	mapped := MapHeaders(rows[0], MetricColumns)

	var out []models.MetricEntry
	for _, row := range rows[1:] {
		if rowIsEmpty(row) {
			continue
		}
		obj := RowToObject(row, mapped)

		e := models.MetricEntry{
			UserID:     cellString(obj[fieldUserID]),
			Date:       NormalizeDate(cellString(obj[fieldDate])),
			FPAMinutes: ParseTimeToMinutes(obj[fieldFPA]),
			LPAMinutes: ParseTimeToMinutes(obj[fieldLPA]),
			Role:       role,
		}
		if e.UserID == "" {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, ErrNoValidRows
	}
	return out, nil
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"1-2-2006",
	"01-02-2006",
	"2006/01/02",
	"Jan 2, 2006",
	time.RFC3339,
}

// NormalizeDate converts a date cell to ISO calendar form when it can, and
// passes it through untouched when it cannot.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	if isoDatePattern.MatchString(raw) {
		return raw
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return raw
}

var (
	filenameISO = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	filenameMDY = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
)

// ScanFilenameDate pulls an embedded calendar date out of a report filename,
// e.g. "FPAOF 02-11-2026.xlsx". Returns ISO form, or "" when nothing parses.
func ScanFilenameDate(name string) string {
	if m := filenameISO.FindStringSubmatch(name); m != nil {
		candidate := fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		if _, err := time.Parse("2006-01-02", candidate); err == nil {
			return candidate
		}
	}
	if m := filenameMDY.FindStringSubmatch(name); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		candidate := fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
		if d, err := time.Parse("2006-01-02", candidate); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return ""
}

func joinName(first, last string) string {
	if first == "" {
		return last
	}
	if last == "" {
		return first
	}
	return first + " " + last
}
