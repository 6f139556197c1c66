package domain

import (
	"strconv"
	"time"
)

// centuryLookahead is how many years into the future a two-digit NOTAM year
// may point before it is read as belonging to the previous century.
const centuryLookahead = 5

// parseNotamDateTime decodes a B)/C) timestamp. Ten digits are YYMMDDHHmm with
// the century resolved against now; twelve digits are YYYYMMDDHHmm. Any other
// length, or a month/day/hour/minute out of range, reports false.
func parseNotamDateTime(s string, now time.Time) (time.Time, bool) {
	var year int
	switch len(s) {
	case 10:
		yy, ok := atoiDigits(s[0:2])
		if !ok {
			return time.Time{}, false
		}
		year = resolveCentury(yy, now.Year())
		s = s[2:]
	case 12:
		yyyy, ok := atoiDigits(s[0:4])
		if !ok {
			return time.Time{}, false
		}
		year = yyyy
		s = s[4:]
	default:
		return time.Time{}, false
	}

	month, okM := atoiDigits(s[0:2])
	day, okD := atoiDigits(s[2:4])
	hour, okH := atoiDigits(s[4:6])
	minute, okMin := atoiDigits(s[6:8])
	if !okM || !okD || !okH || !okMin {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
}

// resolveCentury expands a two-digit year. Years more than centuryLookahead
// ahead of the current two-digit year belong to the previous century.
func resolveCentury(yy, currentYear int) int {
	century := currentYear / 100 * 100
	if yy > currentYear%100+centuryLookahead {
		return century - 100 + yy
	}
	return century + yy
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// atoiDigits parses an all-digit string; signs and spaces are rejected.
func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
