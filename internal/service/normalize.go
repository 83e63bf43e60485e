package service

import "strings"

// NormalizeID canonicalizes a user ID for matching so that "d6-1001",
// "D6-1001" and " D6-1001 " all hit the same roster entry. Idempotent.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NormalizeShift maps whatever the spreadsheet put in the shift column onto
// the fixed ordinal tokens. Anything with an unrecognized digit is passed
// through untouched.
func NormalizeShift(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	switch digits.String() {
	case "1":
		return "1st"
	case "2":
		return "2nd"
	case "4":
		return "4th"
	case "5":
		return "5th"
	}
	return raw
}

// SplitName splits a combined name field: first whitespace token is the first
// name, everything after it is the last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// NamePartsOf resolves display name parts for a roster entry, preferring the
// stored split over re-splitting the combined field.
func NamePartsOf(first, last, full string) (string, string) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first != "" || last != "" {
		return first, last
	}
	return SplitName(full)
}
