// Package dates converts free-form date expressions from the minutes
// archive into canonical YYYY-MM-DD form.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical is the output layout. Normalize is idempotent because this
// layout is itself the last entry in the recognized-layout cascade.
const Canonical = "2006-01-02"

// layouts are tried in order; the first full-string match wins.
var layouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"1/2/2006", // accepts both padded and unpadded MM/DD/YYYY
	Canonical,
}

// loose matches a leading month token, a 1-2 digit day with optional
// comma, and a 4-digit year. Trailing text is tolerated.
var loose = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})`)

// English month tables for the loose fallback. Lookup there is
// case-sensitive and exact; anything else (including non-English month
// names) is unparseable. The layout cascade above is looser: time.Parse
// accepts month names in any casing.
var monthNames = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

var monthAbbrs = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// Normalize converts raw to YYYY-MM-DD. It never fails: input that
// matches no recognized grammar, or names an invalid calendar date,
// yields the empty string. Output is locale- and clock-independent.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(Canonical)
		}
	}

	m := loose.FindStringSubmatch(trimmed)
	if m == nil {
		return ""
	}

	month, ok := monthNames[m[1]]
	if !ok {
		month, ok = monthAbbrs[m[1]]
	}
	if !ok {
		return ""
	}

	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if !validDate(year, month, day) {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// validDate checks the day exists in the given month and year.
// time.Date normalizes overflow (Feb 30 -> Mar 2), so a round-trip
// comparison detects it.
func validDate(year int, month time.Month, day int) bool {
	if day < 1 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}
