package linkedin

import (
	"regexp"
	"sort"
	"strings"
)

// DateRange is a recognized start/end pair. Open-ended ranges carry the
// literal "Present" as end date.
type DateRange struct {
	Start string
	End   string
}

// monthNames accepts English and Swedish month names and their common
// abbreviations. Values are the canonical capitalized spelling used in
// output.
var monthNames = map[string]string{
	"jan": "Jan", "january": "January", "januari": "Januari",
	"feb": "Feb", "february": "February", "februari": "Februari",
	"mar": "Mar", "march": "March", "mars": "Mars",
	"apr": "Apr", "april": "April",
	"may": "May", "maj": "Maj",
	"jun": "Jun", "june": "June", "juni": "Juni",
	"jul": "Jul", "july": "July", "juli": "Juli",
	"aug": "Aug", "august": "August", "augusti": "Augusti",
	"sep": "Sep", "sept": "Sept", "september": "September",
	"oct": "Oct", "october": "October", "okt": "Okt", "oktober": "Oktober",
	"nov": "Nov", "november": "November",
	"dec": "Dec", "december": "December",
}

// presentWords are the open-range sentinels, normalized to "Present".
var presentWords = map[string]bool{
	"present":  true,
	"current":  true,
	"nu":       true,
	"pågående": true,
}

var (
	dateRangeRe = buildDateRangeRe()
	yearRe      = regexp.MustCompile(`^\d{4}$`)
)

func buildDateRangeRe() *regexp.Regexp {
	months := make([]string, 0, len(monthNames))
	for name := range monthNames {
		months = append(months, name)
	}
	// Longest first so "march" wins over "mar" in alternation.
	sort.Slice(months, func(i, j int) bool { return len(months[i]) > len(months[j]) })
	month := "(?:" + strings.Join(months, "|") + ")"
	point := `(?:` + month + `\.?\s+\d{4}|\d{4})`
	sentinel := `(?:present|current|nu|pågående)`
	return regexp.MustCompile(`(?i)^\s*(` + point + `)\s*[-–—]\s*(` + point + `|` + sentinel + `)\s*$`)
}

// ParseDateRange recognizes "MonthYear-or-Year separator MonthYear-or-Year-
// or-sentinel" lines. Returns nil when the text is not a date range.
func ParseDateRange(text string) *DateRange {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &DateRange{
		Start: normalizeDatePoint(m[1]),
		End:   normalizeDatePoint(m[2]),
	}
}

// normalizeDatePoint capitalizes a recognized "Month Year", maps sentinels
// to "Present", and passes anything else through trimmed.
func normalizeDatePoint(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if presentWords[strings.ToLower(trimmed)] {
		return "Present"
	}
	if yearRe.MatchString(trimmed) {
		return trimmed
	}
	fields := strings.Fields(trimmed)
	if len(fields) == 2 {
		month := strings.ToLower(strings.TrimSuffix(fields[0], "."))
		if canonical, ok := monthNames[month]; ok && yearRe.MatchString(fields[1]) {
			return canonical + " " + fields[1]
		}
	}
	return trimmed
}

// durationRe matches bare duration lines like "2 år 3 månader" or
// "1 year 4 months" that follow a date range in LinkedIn exports.
var durationRe = regexp.MustCompile(`(?i)^\d+\s*(år|year|month|månad)`)

// isDurationLine reports whether the text is a duration annotation rather
// than content.
func isDurationLine(text string) bool {
	return durationRe.MatchString(strings.TrimSpace(text))
}
