package render

import (
	"strconv"
	"strings"
)

// monthIndex resolves English and Swedish month tokens for date ordering.
var monthIndex = map[string]int{
	"jan": 1, "january": 1, "januari": 1,
	"feb": 2, "february": 2, "februari": 2,
	"mar": 3, "march": 3, "mars": 3,
	"apr": 4, "april": 4,
	"may": 5, "maj": 5,
	"jun": 6, "june": 6, "juni": 6,
	"jul": 7, "july": 7, "juli": 7,
	"aug": 8, "august": 8, "augusti": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10, "okt": 10, "oktober": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

const (
	dateKeyUnknown = 0
	dateKeyPresent = 1 << 30
)

// dateKey orders date strings chronologically: "Month Year" and bare years
// sort by (year, month), "Present" sorts after everything, and anything
// unparseable sorts first.
func dateKey(date string) int {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return dateKeyUnknown
	}
	if strings.EqualFold(trimmed, "present") {
		return dateKeyPresent
	}

	fields := strings.Fields(trimmed)
	switch len(fields) {
	case 1:
		if year, err := strconv.Atoi(fields[0]); err == nil {
			return year * 16
		}
	case 2:
		month, ok := monthIndex[strings.ToLower(strings.TrimSuffix(fields[0], "."))]
		if !ok {
			break
		}
		if year, err := strconv.Atoi(fields[1]); err == nil {
			return year*16 + month
		}
	}
	return dateKeyUnknown
}

// dateBefore reports whether a is strictly earlier than b. Unknown dates
// never displace a known one.
func dateBefore(a, b string) bool {
	ka, kb := dateKey(a), dateKey(b)
	if ka == dateKeyUnknown || kb == dateKeyUnknown {
		return false
	}
	return ka < kb
}
