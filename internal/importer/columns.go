package importer

import (
	"fmt"
	"strings"
	"time"
)

// Canonical field names produced by header mapping.
const (
	fieldUserID    = "userId"
	fieldName      = "name"
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
	fieldArea      = "area"
	fieldShift     = "shift"
	fieldRole      = "role"
	fieldDate      = "date"
	fieldFPA       = "fpaMinutes"
	fieldLPA       = "lpaMinutes"
)

// RosterColumns maps the header spellings seen in roster exports onto
// canonical fields. Matching is case-insensitive and exact after trimming.
var RosterColumns = map[string]string{
	"user id":    fieldUserID,
	"userid":     fieldUserID,
	"id":         fieldUserID,
	"name":       fieldName,
	"associate":  fieldName,
	"full name":  fieldName,
	"first name": fieldFirstName,
	"firstname":  fieldFirstName,
	"first":      fieldFirstName,
	"last name":  fieldLastName,
	"lastname":   fieldLastName,
	"last":       fieldLastName,
	"area":       fieldArea,
	"dept":       fieldArea,
	"department": fieldArea,
	"shift":      fieldShift,
	"role":       fieldRole,
	"job":        fieldRole,
	"job title":  fieldRole,
}

// MetricColumns covers both FPA report flavors; the role never comes from a
// column.
var MetricColumns = map[string]string{
	"user id":     fieldUserID,
	"userid":      fieldUserID,
	"id":          fieldUserID,
	"date":        fieldDate,
	"fpa":         fieldFPA,
	"fpa minutes": fieldFPA,
	"fpa mins":    fieldFPA,
	"fpa min":     fieldFPA,
	"first pick":  fieldFPA,
	"lpa":         fieldLPA,
	"lpa minutes": fieldLPA,
	"lpa mins":    fieldLPA,
	"lpa min":     fieldLPA,
	"last pick":   fieldLPA,
}

// MapHeaders resolves a raw header row against a synonym table. Unrecognized
// headers map to "" and their columns are ignored, not rejected.
func MapHeaders(headerRow []any, colMap map[string]string) []string {
	out := make([]string, len(headerRow))
	for i, h := range headerRow {
		out[i] = colMap[normalizeHeader(cellString(h))]
	}
	return out
}

// RowToObject applies mapped headers to one data row. Cells beyond the header
// width are dropped; text cells arrive trimmed.
func RowToObject(row []any, mapped []string) map[string]any {
	obj := map[string]any{}
	for i, field := range mapped {
		if field == "" || i >= len(row) {
			continue
		}
		if s, ok := row[i].(string); ok {
			obj[field] = strings.TrimSpace(s)
			continue
		}
		obj[field] = row[i]
	}
	return obj
}

func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\uFEFF", "")
	return strings.ToLower(strings.TrimSpace(h))
}

func rowIsEmpty(row []any) bool {
	for _, c := range row {
		if c == nil {
			continue
		}
		if s, ok := c.(string); ok {
			if strings.TrimSpace(s) != "" {
				return false
			}
			continue
		}
		return false
	}
	return true
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return t.UTC().Format("2006-01-02")
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
