package importer

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/dc6084/backend/internal/models"
)

func rows(lines ...[]any) [][]any {
	return lines
}

func TestMapHeadersSynonyms(t *testing.T) {
	header := []any{"User ID", "  NAME ", "Dept", "Shift", "Job Title", "badge color"}
	mapped := MapHeaders(header, RosterColumns)
	want := []string{"userId", "name", "area", "shift", "role", ""}
	for i := range want {
		if mapped[i] != want[i] {
			t.Fatalf("header %d: got %q, want %q", i, mapped[i], want[i])
		}
	}
}

func TestParseRosterCombinedName(t *testing.T) {
	parsed, err := ParseRoster(rows(
		[]any{"User ID", "Name", "Area", "Shift", "Role"},
		[]any{"d6-1001", "John Paul Smith", "Dry 1st", "1", "Orderfiller"},
		[]any{"", "No Id", "Dry 1st", "1st", "Orderfiller"},
		[]any{"", "", "", "", ""},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(parsed))
	}
	e := parsed[0]
	if e.FirstName != "John" || e.LastName != "Paul Smith" {
		t.Fatalf("bad name split: %q / %q", e.FirstName, e.LastName)
	}
	if e.Shift != "1st" {
		t.Fatalf("expected normalized shift 1st, got %q", e.Shift)
	}
}

func TestParseRosterPrefersSplitNames(t *testing.T) {
	parsed, err := ParseRoster(rows(
		[]any{"id", "first name", "last name", "name", "area", "shift", "role"},
		[]any{"D6-1002", "Jane", "Doe", "Completely Different", "FDD 2nd", "2nd", "Lift Driver"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed[0].FirstName != "Jane" || parsed[0].LastName != "Doe" {
		t.Fatalf("split columns should win: %+v", parsed[0])
	}
	if parsed[0].Name != "Jane Doe" {
		t.Fatalf("combined name should be rebuilt from split: %q", parsed[0].Name)
	}
}

func TestParseRosterNoValidRows(t *testing.T) {
	_, err := ParseRoster(rows([]any{"User ID", "Name"}))
	if !errors.Is(err, ErrNoValidRows) {
		t.Fatalf("expected ErrNoValidRows, got %v", err)
	}
}

func TestParseMetricsAssignsCallerRole(t *testing.T) {
	parsed, err := ParseMetrics(rows(
		[]any{"User ID", "Date", "FPA Minutes", "LPA Minutes"},
		[]any{"D6-1001", "02/11/2026", "0:22:10", "5"},
		[]any{"D6-1002", "2026-02-11", "8", "0.00972"},
	), models.RoleOrderfiller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(parsed))
	}
	for _, e := range parsed {
		if e.Role != models.RoleOrderfiller {
			t.Fatalf("role must come from the caller, got %q", e.Role)
		}
		if e.Date != "2026-02-11" {
			t.Fatalf("date not normalized: %q", e.Date)
		}
	}
	if parsed[0].FPAMinutes != 22 {
		t.Fatalf("duration text not parsed: %d", parsed[0].FPAMinutes)
	}
	if parsed[1].LPAMinutes != 14 {
		t.Fatalf("day fraction not parsed: %d", parsed[1].LPAMinutes)
	}
}

func TestNormalizeDatePassthrough(t *testing.T) {
	if got := NormalizeDate("week 7"); got != "week 7" {
		t.Fatalf("unparseable dates must pass through, got %q", got)
	}
}

func TestScanFilenameDate(t *testing.T) {
	cases := map[string]string{
		"FPAOF 2026-02-11.xlsx":   "2026-02-11",
		"FPALD_02-11-2026.csv":    "2026-02-11",
		"report 2/3/2026 (1).xls": "2026-02-03",
		"FPAOF latest.xlsx":       "",
	}
	for name, want := range cases {
		if got := ScanFilenameDate(name); got != want {
			t.Errorf("ScanFilenameDate(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDecodeFileUnsupportedFormat(t *testing.T) {
	fh := makeMultipartFile(t, "roster", "roster.pdf", "not a sheet")
	_, err := DecodeFile(fh)
	if !errors.Is(err, ErrFileFormat) {
		t.Fatalf("expected ErrFileFormat, got %v", err)
	}
}

func TestDecodeFileCSV(t *testing.T) {
	content := "User ID,Name,Area,Shift,Role\nD6-1001,John Smith,Dry 1st,1st,Orderfiller\n"
	fh := makeMultipartFile(t, "roster", "roster.csv", content)
	decoded, err := DecodeFile(fh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, err := ParseRoster(decoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed) != 1 || parsed[0].UserID != "D6-1001" {
		t.Fatalf("unexpected roster: %+v", parsed)
	}
}

func makeMultipartFile(t *testing.T, fieldName, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(buf.Len()))
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	files := form.File[fieldName]
	if len(files) == 0 {
		t.Fatalf("no file headers found")
	}
	return files[0]
}
