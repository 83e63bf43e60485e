package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	hmsPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)
	msPattern  = regexp.MustCompile(`^(\d{1,3}):(\d{2})$`)
)

// ParseTimeToMinutes converts whatever a spreadsheet cell holds into whole
// elapsed minutes. Exports encode the same quantity as formatted duration
// text, a fraction-of-a-day serial, or a plain number depending on the source
// system and cell formatting, so the fallbacks are tried in a fixed order:
//
//  1. time.Time: UTC hour/minute/second converted to minutes
//  2. "H:MM:SS" / "HH:MM:SS"
//  3. "M:SS" with 1-3 digit minutes
//  4. numeric in (0, 1): day fraction, x1440
//  5. any other numeric: already minutes
//
// Everything else, including empty cells, is 0. Fractions round half away
// from zero; results are never negative.
func ParseTimeToMinutes(raw any) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case time.Time:
		u := v.UTC()
		return clampRound(float64(u.Hour())*60 + float64(u.Minute()) + float64(u.Second())/60)
	case int:
		return clampRound(float64(v))
	case int64:
		return clampRound(float64(v))
	case float64:
		return parseNumeric(v)
	case float32:
		return parseNumeric(float64(v))
	case string:
		return parseTimeString(v)
	default:
		return 0
	}
}

func parseTimeString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if m := hmsPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec, _ := strconv.Atoi(m[3])
		return clampRound(float64(h)*60 + float64(min) + float64(sec)/60)
	}

	if m := msPattern.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		sec, _ := strconv.Atoi(m[2])
		return clampRound(float64(min) + float64(sec)/60)
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return parseNumeric(n)
}

func parseNumeric(n float64) int {
	// A bare fraction of a day is how spreadsheet cells store times when the
	// formatting is lost on export.
	if n > 0 && n < 1 {
		return clampRound(n * 1440)
	}
	return clampRound(n)
}

func clampRound(n float64) int {
	v := int(math.Round(n))
	if v < 0 {
		return 0
	}
	return v
}
